package handler

import (
	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/pkg/markdown"
)

type reviewResponse struct {
	Content     string `json:"content"`
	HTML        string `json:"html"`
	GeneratedAt string `json:"generatedAt"`
}

type sentenceResponse struct {
	ID       int             `json:"id"`
	English  string          `json:"english"`
	Dutch    string          `json:"dutch"`
	AIReview *reviewResponse `json:"aiReview,omitempty"`
}

type translationResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	OriginalText string             `json:"originalText"`
	Sentences    []sentenceResponse `json:"sentences"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
}

type translationSummaryResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	SentenceCount   int    `json:"sentenceCount"`
	TranslatedCount int    `json:"translatedCount"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type reviewStateResponse struct {
	Open          bool            `json:"open"`
	TranslationID string          `json:"translationId,omitempty"`
	SentenceID    int             `json:"sentenceId,omitempty"`
	Loading       bool            `json:"loading"`
	Error         string          `json:"error,omitempty"`
	Review        *reviewResponse `json:"review,omitempty"`
}

func toReviewResponse(cache *model.ReviewCache) *reviewResponse {
	if cache == nil {
		return nil
	}
	return &reviewResponse{
		Content:     cache.Content,
		HTML:        markdown.Render(cache.Content),
		GeneratedAt: formatTime(cache.GeneratedAt),
	}
}

func toSentenceResponse(sentence model.Sentence) sentenceResponse {
	return sentenceResponse{
		ID:       sentence.ID,
		English:  sentence.English,
		Dutch:    sentence.Dutch,
		AIReview: toReviewResponse(sentence.AIReview),
	}
}

func toTranslationResponse(t model.Translation) translationResponse {
	sentences := make([]sentenceResponse, 0, len(t.Sentences))
	for _, sentence := range t.Sentences {
		sentences = append(sentences, toSentenceResponse(sentence))
	}
	return translationResponse{
		ID:           idToString(t.ID),
		Title:        t.Title,
		OriginalText: t.OriginalText,
		Sentences:    sentences,
		CreatedAt:    formatTime(t.CreatedAt),
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
}

func toSummaryResponses(list []model.Translation) []translationSummaryResponse {
	out := make([]translationSummaryResponse, 0, len(list))
	for _, t := range list {
		summary := service.Summarize(t)
		out = append(out, translationSummaryResponse{
			ID:              idToString(summary.ID),
			Title:           summary.Title,
			SentenceCount:   summary.SentenceCount,
			TranslatedCount: summary.TranslatedCount,
			CreatedAt:       formatTime(summary.CreatedAt),
			UpdatedAt:       formatTime(summary.UpdatedAt),
		})
	}
	return out
}

func toReviewStateResponse(state service.ReviewState) reviewStateResponse {
	resp := reviewStateResponse{
		Open:       state.Open,
		SentenceID: state.SentenceID,
		Loading:    state.Loading,
		Error:      state.Error,
		Review:     toReviewResponse(state.Review),
	}
	if state.Open {
		resp.TranslationID = idToString(state.TranslationID)
	}
	return resp
}
