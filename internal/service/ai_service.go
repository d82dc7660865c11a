//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"

	"dutchghostwriter/backend/internal/service/ai"
)

// TextGenerator is the text generation client as seen by the services.
type TextGenerator interface {
	ValidateCredential(ctx context.Context, apiKey string) (ai.Result, error)
	GenerateText(ctx context.Context, apiKey, prompt string, maxLength int) (ai.Result, error)
	ReviewSentence(ctx context.Context, apiKey string, req ai.ReviewRequest) (ai.Result, error)
}

type AIService interface {
	// ValidateCredential checks key, or the stored key when key is empty or masked.
	ValidateCredential(ctx context.Context, key string) (ai.Result, error)
	// GenerateText uses the stored key and max text length.
	GenerateText(ctx context.Context, prompt string) (ai.Result, error)
	ReviewSentence(ctx context.Context, key string, req ai.ReviewRequest) (ai.Result, error)
	Presets() []ai.Preset
}

type aiService struct {
	client   TextGenerator
	settings SettingsService
}

func NewAIService(client TextGenerator, settings SettingsService) AIService {
	return &aiService{client: client, settings: settings}
}

func (s *aiService) ValidateCredential(ctx context.Context, key string) (ai.Result, error) {
	if key == "" || isMaskedKey(key) {
		key = s.settings.APIKey()
	}
	if key == "" {
		return ai.Result{}, ErrCredentialMissing
	}
	res, err := s.client.ValidateCredential(ctx, key)
	if err != nil {
		return ai.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return res, nil
}

func (s *aiService) GenerateText(ctx context.Context, prompt string) (ai.Result, error) {
	current := s.settings.Current()
	if current.APIKey == "" {
		return ai.Result{}, ErrCredentialMissing
	}
	res, err := s.client.GenerateText(ctx, current.APIKey, prompt, current.MaxTextLength)
	if err != nil {
		return ai.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return res, nil
}

func (s *aiService) ReviewSentence(ctx context.Context, key string, req ai.ReviewRequest) (ai.Result, error) {
	if key == "" {
		return ai.Result{}, ErrCredentialMissing
	}
	res, err := s.client.ReviewSentence(ctx, key, req)
	if err != nil {
		return ai.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return res, nil
}

func (s *aiService) Presets() []ai.Preset {
	return ai.Presets()
}
