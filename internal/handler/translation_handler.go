package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/scheduler"
	"dutchghostwriter/backend/internal/service"
)

// DraftQueue buffers keystroke-level edits before they reach the store.
type DraftQueue interface {
	Submit(edit scheduler.Edit) error
	Flush(ctx context.Context)
}

type TranslationHandler struct {
	service service.TranslationService
	drafts  DraftQueue
}

type createTranslationRequest struct {
	Text      string   `json:"text"`
	Sentences []string `json:"sentences"`
}

type updateTranslationRequest struct {
	Title        *string `json:"title"`
	OriginalText *string `json:"originalText"`
}

type renameTranslationRequest struct {
	Title string `json:"title"`
}

type updateSentenceRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type addSentenceRequest struct {
	AfterID *int `json:"afterId"`
}

func NewTranslationHandler(service service.TranslationService, drafts DraftQueue) *TranslationHandler {
	return &TranslationHandler{service: service, drafts: drafts}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/translations", h.List)
	g.POST("/translations", h.Create)
	g.GET("/translations/current", h.Current)
	g.PATCH("/translations/current", h.UpdateCurrent)
	g.DELETE("/translations/current", h.ClearCurrent)
	g.POST("/translations/current/sentences", h.AddSentence)
	g.PUT("/translations/current/sentences/:sid", h.UpdateSentence)
	g.POST("/translations/current/sentences/:sid/draft", h.DraftSentence)
	g.DELETE("/translations/current/sentences/:sid", h.DeleteSentence)
	g.POST("/translations/:id/open", h.Open)
	g.PATCH("/translations/:id", h.Rename)
	g.DELETE("/translations/:id", h.Delete)
}

// List godoc
// @Summary List translations
// @Description Summaries of every stored translation, most recently updated first
// @Tags translations
// @Produce json
// @Success 200 {array} translationSummaryResponse
// @Router /translations [get]
func (h *TranslationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toSummaryResponses(h.service.AllTranslations()))
}

// Create godoc
// @Summary Create translation
// @Description Splits text into sentences unless an explicit list is given, and opens the result
// @Tags translations
// @Accept json
// @Produce json
// @Param body body createTranslationRequest true "Source text"
// @Success 201 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Router /translations [post]
func (h *TranslationHandler) Create(c echo.Context) error {
	var req createTranslationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	h.flushDrafts(c)
	translation, err := h.service.CreateTranslation(c.Request().Context(), req.Text, req.Sentences)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTranslationResponse(translation))
}

// Current godoc
// @Summary Open translation
// @Tags translations
// @Produce json
// @Success 200 {object} translationResponse
// @Success 204 "No translation is open"
// @Router /translations/current [get]
func (h *TranslationHandler) Current(c echo.Context) error {
	translation, ok := h.service.CurrentTranslation()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

func (h *TranslationHandler) UpdateCurrent(c echo.Context) error {
	var req updateTranslationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	translation, err := h.service.UpdateCurrentTranslation(c.Request().Context(), model.TranslationPatch{
		Title:        req.Title,
		OriginalText: req.OriginalText,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

func (h *TranslationHandler) ClearCurrent(c echo.Context) error {
	h.flushDrafts(c)
	h.service.ClearCurrentTranslation()
	return c.NoContent(http.StatusNoContent)
}

// Open godoc
// @Summary Open translation by id
// @Tags translations
// @Produce json
// @Param id path string true "Translation id"
// @Success 200 {object} translationResponse
// @Failure 404 {object} errorResponse
// @Router /translations/{id}/open [post]
func (h *TranslationHandler) Open(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	h.flushDrafts(c)
	translation, err := h.service.LoadTranslation(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

func (h *TranslationHandler) Rename(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req renameTranslationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	translation, err := h.service.RenameTranslation(c.Request().Context(), id, req.Title)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

func (h *TranslationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	h.flushDrafts(c)
	if err := h.service.RemoveTranslation(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateSentence godoc
// @Summary Edit a sentence
// @Description Sets the english or dutch text and drops the sentence's cached review
// @Tags sentences
// @Accept json
// @Produce json
// @Param sid path int true "Sentence id"
// @Param body body updateSentenceRequest true "Field and value"
// @Success 200 {object} translationResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /translations/current/sentences/{sid} [put]
func (h *TranslationHandler) UpdateSentence(c echo.Context) error {
	sid, req, ok := h.bindSentenceEdit(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	translation, err := h.service.UpdateSentence(c.Request().Context(), sid, service.SentenceField(req.Field), req.Value)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

// DraftSentence queues an edit; only the last one per field within the
// debounce window is written.
func (h *TranslationHandler) DraftSentence(c echo.Context) error {
	sid, req, ok := h.bindSentenceEdit(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	field := service.SentenceField(req.Field)
	if field != service.FieldEnglish && field != service.FieldDutch {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	current, open := h.service.CurrentTranslation()
	if !open {
		return writeServiceError(c, service.ErrNoCurrentTranslation)
	}
	if current.SentenceIndex(sid) < 0 {
		return writeServiceError(c, service.ErrNotFound)
	}
	if h.drafts == nil {
		if _, err := h.service.UpdateSentence(c.Request().Context(), sid, field, req.Value); err != nil {
			return writeServiceError(c, err)
		}
		return c.NoContent(http.StatusAccepted)
	}

	err := h.drafts.Submit(scheduler.Edit{TranslationID: current.ID, SentenceID: sid, Field: field, Value: req.Value})
	if errors.Is(err, scheduler.ErrStopped) {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "shutting down"})
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *TranslationHandler) AddSentence(c echo.Context) error {
	var req addSentenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	sentence, err := h.service.AddSentence(c.Request().Context(), req.AfterID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSentenceResponse(sentence))
}

func (h *TranslationHandler) DeleteSentence(c echo.Context) error {
	sid, err := parseSentenceIDParam(c, "sid")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	removed, err := h.service.DeleteSentence(c.Request().Context(), sid)
	if err != nil {
		return writeServiceError(c, err)
	}
	if removed == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toSentenceResponse(*removed))
}

func (h *TranslationHandler) bindSentenceEdit(c echo.Context) (int, updateSentenceRequest, bool) {
	sid, err := parseSentenceIDParam(c, "sid")
	if err != nil {
		return 0, updateSentenceRequest{}, false
	}
	var req updateSentenceRequest
	if err := c.Bind(&req); err != nil {
		return 0, updateSentenceRequest{}, false
	}
	return sid, req, true
}

// flushDrafts lands pending edits before the open translation changes.
func (h *TranslationHandler) flushDrafts(c echo.Context) {
	if h.drafts != nil {
		h.drafts.Flush(c.Request().Context())
	}
}
