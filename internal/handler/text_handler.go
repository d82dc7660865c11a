package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/textutil"
)

type TextHandler struct{}

type segmentRequest struct {
	Text string `json:"text"`
}

type segmentResponse struct {
	Sentences []string `json:"sentences"`
	Title     string   `json:"title"`
	Length    int      `json:"length"`
}

func NewTextHandler() *TextHandler {
	return &TextHandler{}
}

func (h *TextHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/text/segment", h.Segment)
}

// Segment previews how text will be split into sentences.
func (h *TextHandler) Segment(c echo.Context) error {
	var req segmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	sentences := textutil.Segment(req.Text)
	title := textutil.UntitledTitle
	if len(sentences) > 0 {
		title = textutil.DeriveTitle(sentences[0])
	}
	return c.JSON(http.StatusOK, segmentResponse{
		Sentences: sentences,
		Title:     title,
		Length:    textutil.RuneLen(req.Text),
	})
}
