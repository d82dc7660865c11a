package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type settingsRequest struct {
	APIKey           *string `json:"apiKey"`
	Theme            *string `json:"theme"`
	MaxTextLength    *int    `json:"maxTextLength"`
	HidePopupWarning *bool   `json:"hidePopupWarning"`
}

type settingsResponse struct {
	APIKey           string `json:"apiKey"`
	HasAPIKey        bool   `json:"hasApiKey"`
	Theme            string `json:"theme"`
	MaxTextLength    int    `json:"maxTextLength"`
	HidePopupWarning bool   `json:"hidePopupWarning"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.Get)
	g.PUT("/settings", h.Update)
}

// Get godoc
// @Summary Get settings
// @Description The API key is returned masked
// @Tags settings
// @Produce json
// @Success 200 {object} settingsResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, toSettingsResponse(h.service.Current()))
}

// Update godoc
// @Summary Update settings
// @Description Omitted fields are unchanged. Sending the masked key back keeps the stored key; an empty key clears it.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body settingsRequest true "Fields to change"
// @Success 200 {object} settingsResponse
// @Failure 400 {object} errorResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	updated, err := h.service.Update(c.Request().Context(), service.SettingsUpdate{
		APIKey:           req.APIKey,
		Theme:            req.Theme,
		MaxTextLength:    req.MaxTextLength,
		HidePopupWarning: req.HidePopupWarning,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSettingsResponse(updated))
}

func toSettingsResponse(s service.Settings) settingsResponse {
	return settingsResponse{
		APIKey:           s.MaskedAPIKey(),
		HasAPIKey:        s.APIKey != "",
		Theme:            s.Theme,
		MaxTextLength:    s.MaxTextLength,
		HidePopupWarning: s.HidePopupWarning,
	}
}
