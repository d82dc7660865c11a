package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/pkg/logger"
)

const defaultKeepAlive = 25 * time.Second

type EventsHandler struct {
	service   service.TranslationService
	keepAlive time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

func NewEventsHandler(service service.TranslationService) *EventsHandler {
	return &EventsHandler{service: service, keepAlive: defaultKeepAlive, done: make(chan struct{})}
}

// Close ends every open stream and must run before the server shuts down.
func (h *EventsHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *EventsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/events", h.Stream)
}

// Stream godoc
// @Summary State-change stream
// @Description Server-Sent Events. Sends a snapshot on connect, then translations, current and review events as state changes.
// @Tags events
// @Produce text/event-stream
// @Success 200
// @Router /events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	events, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	current, ok := h.service.CurrentTranslation()
	var currentPtr *translationResponse
	if ok {
		resp := toTranslationResponse(current)
		currentPtr = &resp
	}
	snapshot := []struct {
		name    string
		payload interface{}
	}{
		{service.EventTranslations, toSummaryResponses(h.service.AllTranslations())},
		{service.EventCurrent, currentPtr},
		{service.EventReview, toReviewStateResponse(h.service.ReviewState())},
	}
	for _, item := range snapshot {
		if err := writeEvent(res, item.name, item.payload); err != nil {
			return nil
		}
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.done:
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, open := <-events:
			if !open {
				return nil
			}
			if err := writeEvent(res, event.Type, eventPayload(event)); err != nil {
				logger.Debug("event stream closed", "module", "handler", "action", "stream", "resource", "events", "result", "closed", "error", err)
				return nil
			}
		}
	}
}

func eventPayload(event service.Event) interface{} {
	switch event.Type {
	case service.EventTranslations:
		return toSummaryResponses(event.Translations)
	case service.EventCurrent:
		if event.Current == nil {
			return nil
		}
		return toTranslationResponse(*event.Current)
	case service.EventReview:
		if event.Review == nil {
			return toReviewStateResponse(service.ReviewState{})
		}
		return toReviewStateResponse(*event.Review)
	default:
		return nil
	}
}

func writeEvent(res *echo.Response, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
