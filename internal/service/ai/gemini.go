package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"dutchghostwriter/backend/internal/urlutil"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiProvider talks to the generateContent REST endpoint. The key travels
// as the "key" query parameter.
type GeminiProvider struct {
	http   *resty.Client
	apiKey string
	model  string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewGeminiProvider uses httpClient's transport when it is non-nil.
func NewGeminiProvider(apiKey, baseURL, model string, timeout time.Duration, httpClient *http.Client) (*GeminiProvider, error) {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	client := resty.New()
	if httpClient != nil {
		c := *httpClient
		client = resty.NewWithClient(&c)
	}
	client.
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &GeminiProvider{http: client, apiKey: apiKey, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			TopK:            req.TopK,
			TopP:            req.TopP,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}

	var result geminiResponse
	var apiErr geminiErrorResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetPathParam("model", p.model).
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", errors.New("gemini request: " + urlutil.RedactSecret(err.Error(), p.apiKey))
	}
	if resp.IsError() {
		message := apiErr.Error.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return "", &APIError{StatusCode: resp.StatusCode(), Message: message}
	}

	if len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
