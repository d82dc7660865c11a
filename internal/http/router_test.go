package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dutchghostwriter/backend/internal/handler"
	gh "dutchghostwriter/backend/internal/http"
	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/service/mock"
)

func newTestRouter(t *testing.T, enableSwagger bool) (*echo.Echo, *mock.MockTranslationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	translationService := mock.NewMockTranslationService(ctrl)
	settingsService := mock.NewMockSettingsService(ctrl)
	aiService := mock.NewMockAIService(ctrl)

	e := gh.NewRouter(
		handler.NewTranslationHandler(translationService, nil),
		handler.NewReviewHandler(translationService),
		handler.NewSettingsHandler(settingsService),
		handler.NewAIHandler(aiService),
		handler.NewTextHandler(),
		handler.NewEventsHandler(translationService),
		"",
		enableSwagger,
	)
	return e, translationService
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	e, _ := newTestRouter(t, true)

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodGet, "/swagger/*"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/translations"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/review/request"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/settings"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/events"))
}

func TestNewRouter_SwaggerDisabled(t *testing.T) {
	e, _ := newTestRouter(t, false)

	require.NotNil(t, e)
	require.False(t, hasRoute(e, http.MethodGet, "/swagger/*"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/translations"))
}

func TestNewRouter_ServesAPI(t *testing.T) {
	e, translations := newTestRouter(t, false)
	translations.EXPECT().CurrentTranslation().Return(model.Translation{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/translations/current", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
