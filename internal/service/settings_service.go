//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"dutchghostwriter/backend/internal/repository"
	"dutchghostwriter/backend/pkg/logger"
)

const (
	keyAPIKey           = "app.api_key"
	keyTheme            = "app.theme"
	keyMaxTextLength    = "app.max_text_length"
	keyHidePopupWarning = "app.hide_popup_warning"

	settingsPrefix = "app."
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultMaxTextLength = 1000
	MinMaxTextLength     = 100
	MaxMaxTextLength     = 5000
)

// Settings is the process-wide preferences singleton.
type Settings struct {
	APIKey           string
	Theme            string
	MaxTextLength    int
	HidePopupWarning bool
}

// SettingsUpdate holds the fields a caller wants to change. A masked API key
// is treated as "unchanged" and an empty one clears the stored key.
type SettingsUpdate struct {
	APIKey           *string
	Theme            *string
	MaxTextLength    *int
	HidePopupWarning *bool
}

type SettingsService interface {
	Load(ctx context.Context) error
	Current() Settings
	APIKey() string
	SetAPIKey(ctx context.Context, key string) error
	SetTheme(ctx context.Context, theme string) error
	SetMaxTextLength(ctx context.Context, length int) (int, error)
	SetHidePopupWarning(ctx context.Context, hide bool) error
	Update(ctx context.Context, update SettingsUpdate) (Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository

	mu       sync.RWMutex
	settings Settings
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo, settings: defaultSettings()}
}

func defaultSettings() Settings {
	return Settings{Theme: ThemeLight, MaxTextLength: DefaultMaxTextLength}
}

// Load reads every stored slot once. Unparseable values fall back to defaults.
func (s *settingsService) Load(ctx context.Context) error {
	stored, err := s.repo.GetByPrefix(ctx, settingsPrefix)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := defaultSettings()
	for _, setting := range stored {
		switch setting.Key {
		case keyAPIKey:
			loaded.APIKey = setting.Value
		case keyTheme:
			if isValidTheme(setting.Value) {
				loaded.Theme = setting.Value
			}
		case keyMaxTextLength:
			if n, err := strconv.Atoi(setting.Value); err == nil {
				loaded.MaxTextLength = clampMaxTextLength(n)
			}
		case keyHidePopupWarning:
			loaded.HidePopupWarning = setting.Value == "true"
		}
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()
	return nil
}

func (s *settingsService) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *settingsService) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.APIKey
}

// SetAPIKey stores key; an empty key removes the stored credential.
func (s *settingsService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if key == "" {
		err = s.repo.Delete(ctx, keyAPIKey)
	} else {
		err = s.repo.Set(ctx, keyAPIKey, key)
	}
	if err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	s.settings.APIKey = key
	logger.Info("api key updated", "module", "service", "action", "update", "resource", "settings", "result", "ok", "has_key", key != "")
	return nil
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if !isValidTheme(theme) {
		return fmt.Errorf("%w: theme must be %q or %q", ErrInvalid, ThemeLight, ThemeDark)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, keyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.settings.Theme = theme
	return nil
}

// SetMaxTextLength clamps length into range and returns the stored value.
func (s *settingsService) SetMaxTextLength(ctx context.Context, length int) (int, error) {
	length = clampMaxTextLength(length)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, keyMaxTextLength, strconv.Itoa(length)); err != nil {
		return 0, fmt.Errorf("save max text length: %w", err)
	}
	s.settings.MaxTextLength = length
	return length, nil
}

func (s *settingsService) SetHidePopupWarning(ctx context.Context, hide bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, keyHidePopupWarning, strconv.FormatBool(hide)); err != nil {
		return fmt.Errorf("save popup warning flag: %w", err)
	}
	s.settings.HidePopupWarning = hide
	return nil
}

// Update validates everything first so an invalid field leaves all slots untouched.
func (s *settingsService) Update(ctx context.Context, update SettingsUpdate) (Settings, error) {
	if update.Theme != nil && !isValidTheme(*update.Theme) {
		return Settings{}, fmt.Errorf("%w: theme must be %q or %q", ErrInvalid, ThemeLight, ThemeDark)
	}

	if update.APIKey != nil && !isMaskedKey(*update.APIKey) {
		if err := s.SetAPIKey(ctx, *update.APIKey); err != nil {
			return Settings{}, err
		}
	}
	if update.Theme != nil {
		if err := s.SetTheme(ctx, *update.Theme); err != nil {
			return Settings{}, err
		}
	}
	if update.MaxTextLength != nil {
		if _, err := s.SetMaxTextLength(ctx, *update.MaxTextLength); err != nil {
			return Settings{}, err
		}
	}
	if update.HidePopupWarning != nil {
		if err := s.SetHidePopupWarning(ctx, *update.HidePopupWarning); err != nil {
			return Settings{}, err
		}
	}
	return s.Current(), nil
}

func isValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

func clampMaxTextLength(length int) int {
	if length < MinMaxTextLength {
		return MinMaxTextLength
	}
	if length > MaxMaxTextLength {
		return MaxMaxTextLength
	}
	return length
}

// MaskedAPIKey keeps only enough of the key to recognise it.
func (s Settings) MaskedAPIKey() string {
	return maskAPIKey(s.APIKey)
}

func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "***" + key[len(key)-4:]
}

func isMaskedKey(key string) bool {
	return strings.Contains(key, "***")
}
