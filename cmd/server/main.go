package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/subosito/gotenv"

	"github.com/Nikhil-NP/vibe-check/internal/app"
	"github.com/Nikhil-NP/vibe-check/internal/config"
	"github.com/Nikhil-NP/vibe-check/internal/domain"
	"github.com/Nikhil-NP/vibe-check/internal/genai"
	"github.com/Nikhil-NP/vibe-check/internal/inference"
	"github.com/Nikhil-NP/vibe-check/internal/logging"
	"github.com/Nikhil-NP/vibe-check/internal/server"
	"github.com/Nikhil-NP/vibe-check/internal/version"
)

func main() {
	if err := gotenv.Load(); err != nil {
		// No .env file is fine; the OS environment is authoritative.
		slog.Debug("No .env file found, using OS environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	slog.Info("Starting vibe-check",
		"version", version.Get().Version,
		"env", cfg.AppEnv,
		"inference_enabled", cfg.InferenceEnabled(),
		"generative_enabled", cfg.GenerativeEnabled(),
	)

	var inferenceScorer domain.InferenceScorer
	if cfg.InferenceEnabled() {
		inferenceScorer = inference.New(cfg.HFAPIToken, cfg.HFModel)
		slog.Info("Hosted inference model enabled", "model", cfg.HFModel)
	}

	var generative domain.GenerativeClient
	if cfg.GenerativeEnabled() {
		generative = genai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		slog.Info("Generative AI collaborator enabled", "model", cfg.OpenAIModel)
	}

	svc := app.NewService(inferenceScorer, generative, cfg.EnhanceCacheTTL, clockwork.NewRealClock())
	srv := server.NewServer(cfg, svc)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Shutdown complete")
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}
