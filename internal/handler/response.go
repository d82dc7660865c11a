package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dutchghostwriter/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes {"error": message} with status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrNoCurrentTranslation):
		return Error(c, http.StatusConflict, "no translation is open")
	case errors.Is(err, service.ErrReviewNotOpen):
		return Error(c, http.StatusConflict, "no review is open")
	case errors.Is(err, service.ErrCredentialMissing):
		return Error(c, http.StatusPreconditionFailed, "api key is not configured")
	case errors.Is(err, service.ErrUpstream):
		return Error(c, http.StatusBadGateway, "text generation service failed")
	case errors.Is(err, service.ErrStoreUnavailable):
		return Error(c, http.StatusServiceUnavailable, "storage unavailable")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

// Snowflake ids exceed the integer range JavaScript can represent.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
