package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weathertracker.app/internal/adapters/infrastructure"
	"weathertracker.app/internal/app"
	"weathertracker.app/internal/config"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	root := logger.NewWithLevel(level)
	root.SetDefault()

	appLogger, closeLogger := buildLogger(root, cfg.Log.FilePath, level)
	defer closeLogger()

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Type.String(),
		"page_size", cfg.Pagination.PageSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := setupGracefulShutdown(cancel, application)

	slog.Info("Starting Weather Tracker...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-done
}

// buildLogger returns the application logger, teeing into LOG_FILE_PATH when it is set
func buildLogger(root *logger.Logger, filePath string, level slog.Level) (ports.Logger, func()) {
	stdout := infrastructure.NewSlogLoggerAdapter(root.Logger)
	if filePath == "" {
		return stdout, func() {}
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(filePath, level)
	if err != nil {
		slog.Warn("Failed to create file logger, logging to stdout only", "error", err)
		return stdout, func() {}
	}

	slog.Info("File logging enabled", "path", filePath)
	return infrastructure.MultiLogger{stdout, fileLogger}, func() { _ = fileLogger.Close() }
}

func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application) <-chan struct{} {
	done := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}
	}()

	return done
}
