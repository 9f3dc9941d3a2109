package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/history"
	"github.com/scopelens/scopelens/internal/llm"
	"github.com/scopelens/scopelens/internal/llm/gemini"
	"github.com/scopelens/scopelens/internal/pipeline"
	"github.com/scopelens/scopelens/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := history.Open(cfg.History.Path, cfg.History.Cap, logger)
	if err != nil {
		logger.Error("opening history store", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	// The remote extractor is optional; without an API key the heuristic
	// engine handles every upload.
	var remote llm.ProjectExtractor
	if cfg.LLM.APIKey != "" {
		remote = gemini.NewClient(gemini.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, logger)
		logger.Info("remote extractor enabled", "model", cfg.LLM.Model)
	} else {
		logger.Info("remote extractor disabled, heuristics only")
	}

	processor := pipeline.NewProcessor(logger, remote)
	svc := server.NewService(logger, processor, store, cfg.Server.MaxUploadBytes)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.Routes(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
