package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"dutchghostwriter/backend/internal/textutil"
	"dutchghostwriter/backend/pkg/sanitizer"
)

// Result is the tagged outcome of a client operation. Expected failures
// (missing or rejected key, empty output, non-2xx answers) are reported here
// instead of as a Go error.
type Result struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(data string) Result {
	return Result{Success: true, Data: data}
}

func failure(message string) Result {
	return Result{Success: false, Error: message}
}

// Factory builds a provider bound to one API key.
type Factory func(apiKey string) (Provider, error)

// Client runs the three generation operations. It holds no credential: the
// key is passed with every call. Each call makes exactly one attempt.
type Client struct {
	newProvider Factory
}

// NewClient fills in the provider's default model when cfg.Model is empty.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	return &Client{newProvider: func(apiKey string) (Provider, error) {
		c := cfg
		c.APIKey = apiKey
		return NewProvider(c)
	}}
}

// NewClientWithFactory is used when the provider needs to be substituted.
func NewClientWithFactory(factory Factory) *Client {
	return &Client{newProvider: factory}
}

// ValidateCredential succeeds iff a trivial prompt yields non-empty text.
func (c *Client) ValidateCredential(ctx context.Context, apiKey string) (Result, error) {
	text, res, err := c.complete(ctx, apiKey, Request{
		Prompt:          validatePrompt,
		Temperature:     0,
		TopK:            1,
		TopP:            1,
		MaxOutputTokens: 16,
	})
	if err != nil || !res.Success {
		return res, err
	}
	return success(text), nil
}

// GenerateText returns cleaned text cut to maxLength runes.
func (c *Client) GenerateText(ctx context.Context, apiKey, prompt string, maxLength int) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return failure("prompt must not be empty"), nil
	}
	text, res, err := c.complete(ctx, apiKey, Request{
		Prompt:          GenerationPrompt(prompt, maxLength),
		Temperature:     0.9,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 2048,
	})
	if err != nil || !res.Success {
		return res, err
	}

	text = textutil.Truncate(sanitizer.CleanGeneratedText(text), maxLength)
	if text == "" {
		return failure(ErrEmptyResponse.Error()), nil
	}
	return success(text), nil
}

// ReviewSentence returns the model's Markdown critique unmodified.
func (c *Client) ReviewSentence(ctx context.Context, apiKey string, req ReviewRequest) (Result, error) {
	text, res, err := c.complete(ctx, apiKey, Request{
		Prompt:          ReviewPrompt(req),
		Temperature:     0.3,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	})
	if err != nil || !res.Success {
		return res, err
	}
	return success(text), nil
}

func (c *Client) complete(ctx context.Context, apiKey string, req Request) (string, Result, error) {
	provider, err := c.newProvider(apiKey)
	if err != nil {
		if errors.Is(err, ErrMissingAPIKey) {
			return "", failure(err.Error()), nil
		}
		return "", Result{}, err
	}

	start := time.Now()
	text, err := provider.Complete(ctx, req)
	if err != nil {
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr):
			logCall(provider.Name(), "failed", start, "status", apiErr.StatusCode)
			return "", failure(apiErr.Error()), nil
		case errors.Is(err, ErrEmptyResponse):
			logCall(provider.Name(), "empty", start)
			return "", failure(err.Error()), nil
		default:
			logCall(provider.Name(), "error", start, "error", err)
			return "", Result{}, err
		}
	}
	logCall(provider.Name(), "ok", start)
	return text, success(text), nil
}
