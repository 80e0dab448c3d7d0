package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"landing-builder-backend/internal/app"
	"landing-builder-backend/internal/config"
	"landing-builder-backend/pkg/logger"
	"landing-builder-backend/pkg/validator"
)

func main() {
	// .env is optional, config falls back to the process environment
	_ = godotenv.Load()

	cfg := config.New()
	logger.Init(cfg.Environment)
	defer logger.Close()
	logger.Info("Starting Landing Builder API", nil)

	validator.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize application", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		logger.Error("Server error occurred, initiating shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger.Info("Server exited gracefully", nil)
}
