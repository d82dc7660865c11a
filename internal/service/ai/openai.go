package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements Provider on the Chat Completions API. It also
// serves OpenAI-compatible endpoints.
type OpenAIProvider struct {
	client openai.Client
	model  string
	name   string
}

func NewOpenAIProvider(apiKey, baseURL, model string, timeout time.Duration, httpClient *http.Client) (*OpenAIProvider, error) {
	return newOpenAIProvider(ProviderOpenAI, apiKey, baseURL, model, timeout, httpClient), nil
}

// NewCompatibleProvider targets a third-party server speaking the OpenAI chat protocol.
func NewCompatibleProvider(apiKey, baseURL, model string, timeout time.Duration, httpClient *http.Client) (*OpenAIProvider, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return newOpenAIProvider(ProviderCompatible, apiKey, baseURL, model, timeout, httpClient), nil
}

func newOpenAIProvider(name, apiKey, baseURL, model string, timeout time.Duration, httpClient *http.Client) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		name:   name,
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	}
	if req.MaxOutputTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxOutputTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = apiErr.Error()
			}
			return "", &APIError{StatusCode: apiErr.StatusCode, Message: message}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
