package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dutchghostwriter/backend/internal/handler"
	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/scheduler"
	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/internal/service/mock"
)

const testTranslationID int64 = 1790000000000000123

func sampleTranslation() model.Translation {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return model.Translation{
		ID:           testTranslationID,
		Title:        "I eat bread.",
		OriginalText: "I eat bread. You drink milk.",
		Sentences: []model.Sentence{
			{ID: 1, English: "I eat bread.", Dutch: "Ik eet brood.", AIReview: &model.ReviewCache{Content: "**Good**", GeneratedAt: created}},
			{ID: 2, English: "You drink milk."},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestTranslationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)

	mockService.EXPECT().AllTranslations().Return([]model.Translation{sampleTranslation()})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/translations", nil))
	require.NoError(t, h.List(c))

	var resp []handler.TranslationSummaryResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "1790000000000000123", resp[0].ID)
	require.Equal(t, 2, resp[0].SentenceCount)
	require.Equal(t, 1, resp[0].TranslatedCount)
}

func TestTranslationHandler_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)

	mockService.EXPECT().AllTranslations().Return([]model.Translation{})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/translations", nil))
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestTranslationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)

	mockService.EXPECT().
		CreateTranslation(gomock.Any(), "I eat bread. You drink milk.", nil).
		Return(sampleTranslation(), nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/translations", map[string]interface{}{"text": "I eat bread. You drink milk."})
	c, rec := newTestContext(e, req)
	require.NoError(t, h.Create(c))

	var resp handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "1790000000000000123", resp.ID)
	require.Len(t, resp.Sentences, 2)
	require.NotNil(t, resp.Sentences[0].AIReview)
	require.Equal(t, "**Good**", resp.Sentences[0].AIReview.Content)
	require.Contains(t, resp.Sentences[0].AIReview.HTML, "<strong>Good</strong>")
	require.Nil(t, resp.Sentences[1].AIReview)
}

func TestTranslationHandler_Create_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPost, "/translations", "{bad json"))
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	mockService.EXPECT().CreateTranslation(gomock.Any(), "   ", nil).Return(model.Translation{}, service.ErrInvalid)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/translations", map[string]string{"text": "   "}))
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().CurrentTranslation().Return(model.Translation{}, false)
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/translations/current", nil))
	require.NoError(t, h.Current(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	mockService.EXPECT().CurrentTranslation().Return(sampleTranslation(), true)
	c, rec = newTestContext(e, newJSONRequest(http.MethodGet, "/translations/current", nil))
	require.NoError(t, h.Current(c))
	var resp handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "I eat bread.", resp.Title)
}

func TestTranslationHandler_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().LoadTranslation(gomock.Any(), testTranslationID).Return(sampleTranslation(), nil)
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/translations/1790000000000000123/open", nil))
	setPathParams(c, map[string]string{"id": "1790000000000000123"})
	require.NoError(t, h.Open(c))
	require.Equal(t, http.StatusOK, rec.Code)

	mockService.EXPECT().LoadTranslation(gomock.Any(), int64(5)).Return(model.Translation{}, service.ErrNotFound)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/translations/5/open", nil))
	setPathParams(c, map[string]string{"id": "5"})
	require.NoError(t, h.Open(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/translations/abc/open", nil))
	setPathParams(c, map[string]string{"id": "abc"})
	require.NoError(t, h.Open(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	renamed := sampleTranslation()
	renamed.Title = "Breakfast"
	mockService.EXPECT().RenameTranslation(gomock.Any(), testTranslationID, "Breakfast").Return(renamed, nil)

	c, rec := newTestContext(e, newJSONRequest(http.MethodPatch, "/translations/1790000000000000123", map[string]string{"title": "Breakfast"}))
	setPathParams(c, map[string]string{"id": "1790000000000000123"})
	require.NoError(t, h.Rename(c))

	var resp handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "Breakfast", resp.Title)
}

func TestTranslationHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().RemoveTranslation(gomock.Any(), int64(9)).Return(nil)
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/translations/9", nil))
	setPathParams(c, map[string]string{"id": "9"})
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	mockService.EXPECT().RemoveTranslation(gomock.Any(), int64(10)).Return(service.ErrNotFound)
	c, rec = newTestContext(e, newJSONRequest(http.MethodDelete, "/translations/10", nil))
	setPathParams(c, map[string]string{"id": "10"})
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTranslationHandler_UpdateCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().
		UpdateCurrentTranslation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch model.TranslationPatch) (model.Translation, error) {
			require.NotNil(t, patch.Title)
			require.Equal(t, "Morning", *patch.Title)
			require.Nil(t, patch.OriginalText)
			require.Nil(t, patch.Sentences)
			updated := sampleTranslation()
			updated.Title = *patch.Title
			return updated, nil
		})

	c, rec := newTestContext(e, newJSONRequest(http.MethodPatch, "/translations/current", map[string]string{"title": "Morning"}))
	require.NoError(t, h.UpdateCurrent(c))
	require.Equal(t, http.StatusOK, rec.Code)

	mockService.EXPECT().UpdateCurrentTranslation(gomock.Any(), gomock.Any()).Return(model.Translation{}, service.ErrNoCurrentTranslation)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPatch, "/translations/current", map[string]string{"title": "x"}))
	require.NoError(t, h.UpdateCurrent(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestTranslationHandler_ClearCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)

	mockService.EXPECT().ClearCurrentTranslation()

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/translations/current", nil))
	require.NoError(t, h.ClearCurrent(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTranslationHandler_UpdateSentence(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	updated := sampleTranslation()
	updated.Sentences[1].Dutch = "Jij drinkt melk."
	mockService.EXPECT().UpdateSentence(gomock.Any(), 2, service.FieldDutch, "Jij drinkt melk.").Return(updated, nil)

	req := newJSONRequest(http.MethodPut, "/translations/current/sentences/2", map[string]string{"field": "dutch", "value": "Jij drinkt melk."})
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"sid": "2"})
	require.NoError(t, h.UpdateSentence(c))

	var resp handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "Jij drinkt melk.", resp.Sentences[1].Dutch)

	mockService.EXPECT().UpdateSentence(gomock.Any(), 7, service.FieldDutch, "x").Return(model.Translation{}, service.ErrNotFound)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPut, "/translations/current/sentences/7", map[string]string{"field": "dutch", "value": "x"}))
	setPathParams(c, map[string]string{"sid": "7"})
	require.NoError(t, h.UpdateSentence(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newTestContext(e, newJSONRequest(http.MethodPut, "/translations/current/sentences/x", map[string]string{"field": "dutch"}))
	setPathParams(c, map[string]string{"sid": "x"})
	require.NoError(t, h.UpdateSentence(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_DraftSentence(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	drafts := scheduler.New(mockService, time.Hour)
	h := handler.NewTranslationHandler(mockService, drafts)
	e := newTestEcho()

	mockService.EXPECT().CurrentTranslation().Return(sampleTranslation(), true).AnyTimes()

	for _, value := range []string{"J", "Jij", "Jij drinkt"} {
		req := newJSONRequest(http.MethodPost, "/translations/current/sentences/2/draft", map[string]string{"field": "dutch", "value": value})
		c, rec := newTestContext(e, req)
		setPathParams(c, map[string]string{"sid": "2"})
		require.NoError(t, h.DraftSentence(c))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}
	require.Equal(t, 1, drafts.Pending())

	mockService.EXPECT().UpdateSentence(gomock.Any(), 2, service.FieldDutch, "Jij drinkt").Return(sampleTranslation(), nil)
	drafts.Stop()

	req := newJSONRequest(http.MethodPost, "/translations/current/sentences/2/draft", map[string]string{"field": "dutch", "value": "late"})
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"sid": "2"})
	require.NoError(t, h.DraftSentence(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTranslationHandler_DraftSentence_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	drafts := scheduler.New(mockService, time.Hour)
	h := handler.NewTranslationHandler(mockService, drafts)
	e := newTestEcho()

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/draft", map[string]string{"field": "notes", "value": "x"}))
	setPathParams(c, map[string]string{"sid": "1"})
	require.NoError(t, h.DraftSentence(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	mockService.EXPECT().CurrentTranslation().Return(model.Translation{}, false)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/draft", map[string]string{"field": "dutch", "value": "x"}))
	setPathParams(c, map[string]string{"sid": "1"})
	require.NoError(t, h.DraftSentence(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	mockService.EXPECT().CurrentTranslation().Return(sampleTranslation(), true)
	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/draft", map[string]string{"field": "dutch", "value": "x"}))
	setPathParams(c, map[string]string{"sid": "99"})
	require.NoError(t, h.DraftSentence(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Zero(t, drafts.Pending())
}

func TestTranslationHandler_OpenFlushesDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	drafts := scheduler.New(mockService, time.Hour)
	h := handler.NewTranslationHandler(mockService, drafts)
	e := newTestEcho()

	mockService.EXPECT().CurrentTranslation().Return(sampleTranslation(), true).AnyTimes()
	c, _ := newTestContext(e, newJSONRequest(http.MethodPost, "/draft", map[string]string{"field": "english", "value": "I eat rice."}))
	setPathParams(c, map[string]string{"sid": "1"})
	require.NoError(t, h.DraftSentence(c))

	gomock.InOrder(
		mockService.EXPECT().UpdateSentence(gomock.Any(), 1, service.FieldEnglish, "I eat rice.").Return(sampleTranslation(), nil),
		mockService.EXPECT().LoadTranslation(gomock.Any(), int64(42)).Return(sampleTranslation(), nil),
	)
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/translations/42/open", nil))
	setPathParams(c, map[string]string{"id": "42"})
	require.NoError(t, h.Open(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, drafts.Pending())
}

func TestTranslationHandler_AddSentence(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().
		AddSentence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, afterID *int) (model.Sentence, error) {
			require.NotNil(t, afterID)
			require.Equal(t, 1, *afterID)
			return model.Sentence{ID: 3}, nil
		})

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/translations/current/sentences", map[string]int{"afterId": 1}))
	require.NoError(t, h.AddSentence(c))

	var resp handler.SentenceResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, 3, resp.ID)
	require.Empty(t, resp.English)
}

func TestTranslationHandler_DeleteSentence(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandler(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().DeleteSentence(gomock.Any(), 2).Return(&model.Sentence{ID: 2, English: "You drink milk."}, nil)
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/translations/current/sentences/2", nil))
	setPathParams(c, map[string]string{"sid": "2"})
	require.NoError(t, h.DeleteSentence(c))
	var resp handler.SentenceResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "You drink milk.", resp.English)

	mockService.EXPECT().DeleteSentence(gomock.Any(), 8).Return(nil, nil)
	c, rec = newTestContext(e, newJSONRequest(http.MethodDelete, "/translations/current/sentences/8", nil))
	setPathParams(c, map[string]string{"sid": "8"})
	require.NoError(t, h.DeleteSentence(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
