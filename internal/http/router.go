package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "dutchghostwriter/backend/docs"
	"dutchghostwriter/backend/internal/handler"
)

func NewRouter(
	translationHandler *handler.TranslationHandler,
	reviewHandler *handler.ReviewHandler,
	settingsHandler *handler.SettingsHandler,
	aiHandler *handler.AIHandler,
	textHandler *handler.TextHandler,
	eventsHandler *handler.EventsHandler,
	staticDir string,
	enableSwagger bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLoggerMiddleware())

	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")
	translationHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)
	aiHandler.RegisterRoutes(api)
	textHandler.RegisterRoutes(api)
	eventsHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
