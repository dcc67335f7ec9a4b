// Package cli provides common initialization utilities shared by the
// cmd/finbook and cmd/dbinspect entry points.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"finbook/internal/config"
	"finbook/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the database, runs migrations and seeds defaults.
// Returns the store or exits the process on failure.
func OpenStore(ctx context.Context, logger *slog.Logger, dbPath string) *storage.Store {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Error("Failed to open finance database", "error", err, "path", dbPath)
		os.Exit(1)
	}
	if err := store.Seed(ctx); err != nil {
		logger.Error("Failed to seed finance database", "error", err, "path", dbPath)
		store.Close()
		os.Exit(1)
	}
	return store
}
