package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"dutchghostwriter/backend/internal/model"
)

type settingsRepoStub struct {
	mu        sync.Mutex
	data      map[string]string
	setErr    map[string]error
	prefixErr error
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{
		data:   make(map[string]string),
		setErr: make(map[string]error),
	}
}

func (s *settingsRepoStub) Get(ctx context.Context, key string) (*model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return &model.Setting{Key: key, Value: val, UpdatedAt: time.Now().UTC()}, nil
}

func (s *settingsRepoStub) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefixErr != nil {
		return nil, s.prefixErr
	}
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	settings := make([]model.Setting, 0, len(keys))
	for _, key := range keys {
		settings = append(settings, model.Setting{Key: key, Value: s.data[key], UpdatedAt: time.Now().UTC()})
	}
	return settings, nil
}

func (s *settingsRepoStub) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setErr[key]; err != nil {
		return err
	}
	s.data[key] = value
	return nil
}

func (s *settingsRepoStub) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *settingsRepoStub) value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}
