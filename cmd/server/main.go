package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dutchghostwriter/backend/internal/config"
	"dutchghostwriter/backend/internal/db"
	"dutchghostwriter/backend/internal/handler"
	apphttp "dutchghostwriter/backend/internal/http"
	"dutchghostwriter/backend/internal/network"
	"dutchghostwriter/backend/internal/repository"
	"dutchghostwriter/backend/internal/scheduler"
	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/internal/service/ai"
	"dutchghostwriter/backend/pkg/logger"
	"dutchghostwriter/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

// @title Dutch Ghostwriter API
// @version 1.0
// @description Sentence-by-sentence English to Dutch translation practice with AI review.
// @BasePath /api
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		logger.Error("init id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	translationRepo := repository.NewTranslationRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)

	ctx := context.Background()
	settingsService := service.NewSettingsService(settingsRepo)
	if err := settingsService.Load(ctx); err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}

	outbound, err := network.NewHTTPClient(cfg.AI.Proxy)
	if err != nil {
		logger.Error("build outbound client", "error", err)
		os.Exit(1)
	}
	aiClient := ai.NewClient(ai.Config{
		Provider:   cfg.AI.Provider,
		Model:      cfg.AI.Model,
		BaseURL:    cfg.AI.BaseURL,
		Timeout:    cfg.AI.Timeout,
		HTTPClient: outbound,
	})
	aiService := service.NewAIService(aiClient, settingsService)
	translationService := service.NewTranslationService(translationRepo, settingsService, aiService)
	if err := translationService.Initialize(ctx); err != nil {
		logger.Error("initialize translations", "error", err)
		os.Exit(1)
	}

	drafts := scheduler.New(translationService, cfg.EditDebounce)

	eventsHandler := handler.NewEventsHandler(translationService)
	e := apphttp.NewRouter(
		handler.NewTranslationHandler(translationService, drafts),
		handler.NewReviewHandler(translationService),
		handler.NewSettingsHandler(settingsService),
		handler.NewAIHandler(aiService),
		handler.NewTextHandler(),
		eventsHandler,
		cfg.StaticDir,
		cfg.EnableSwagger,
	)

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "provider", cfg.AI.Provider, "static_dir", cfg.StaticDir)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	eventsHandler.Close()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	drafts.Stop()
}
