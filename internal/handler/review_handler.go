package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/service"
)

type ReviewHandler struct {
	service service.TranslationService
}

type openReviewRequest struct {
	SentenceID int `json:"sentenceId"`
}

func NewReviewHandler(service service.TranslationService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/review", h.State)
	g.POST("/review/open", h.Open)
	g.POST("/review/request", h.Request)
	g.POST("/review/close", h.Close)
}

func (h *ReviewHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, toReviewStateResponse(h.service.ReviewState()))
}

func (h *ReviewHandler) Open(c echo.Context) error {
	var req openReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	state, err := h.service.OpenReview(req.SentenceID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewStateResponse(state))
}

// Request godoc
// @Summary Request AI review
// @Description Fetches a critique for the sentence under review unless one is cached.
// @Description A missing key or failed call still returns the session state with its error.
// @Tags review
// @Produce json
// @Success 200 {object} reviewStateResponse
// @Failure 409 {object} errorResponse
// @Failure 412 {object} reviewStateResponse
// @Failure 502 {object} reviewStateResponse
// @Router /review/request [post]
func (h *ReviewHandler) Request(c echo.Context) error {
	state, err := h.service.RequestReview(c.Request().Context())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, toReviewStateResponse(state))
	case errors.Is(err, service.ErrCredentialMissing):
		return c.JSON(http.StatusPreconditionFailed, toReviewStateResponse(state))
	case errors.Is(err, service.ErrUpstream):
		return c.JSON(http.StatusBadGateway, toReviewStateResponse(state))
	default:
		return writeServiceError(c, err)
	}
}

func (h *ReviewHandler) Close(c echo.Context) error {
	return c.JSON(http.StatusOK, toReviewStateResponse(h.service.CloseReview()))
}
