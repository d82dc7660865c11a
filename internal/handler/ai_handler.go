package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/internal/service/ai"
)

type AIHandler struct {
	service service.AIService
}

type validateKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type generateTextRequest struct {
	Prompt string `json:"prompt"`
}

func NewAIHandler(service service.AIService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai/validate", h.Validate)
	g.POST("/ai/generate", h.Generate)
	g.GET("/ai/presets", h.Presets)
}

// Validate godoc
// @Summary Validate API key
// @Description Checks the given key, or the stored one when empty or masked. Rejections are reported in the body.
// @Tags ai
// @Accept json
// @Produce json
// @Param body body validateKeyRequest false "Key to check"
// @Success 200 {object} ai.Result
// @Failure 412 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /ai/validate [post]
func (h *AIHandler) Validate(c echo.Context) error {
	var req validateKeyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	result, err := h.service.ValidateCredential(c.Request().Context(), req.APIKey)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Generate godoc
// @Summary Generate practice text
// @Tags ai
// @Accept json
// @Produce json
// @Param body body generateTextRequest true "Topic prompt"
// @Success 200 {object} ai.Result
// @Failure 412 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /ai/generate [post]
func (h *AIHandler) Generate(c echo.Context) error {
	var req generateTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	result, err := h.service.GenerateText(c.Request().Context(), req.Prompt)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AIHandler) Presets(c echo.Context) error {
	presets := h.service.Presets()
	if presets == nil {
		presets = []ai.Preset{}
	}
	return c.JSON(http.StatusOK, presets)
}
