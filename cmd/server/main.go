// Package main implements the entry point for the Drop Task API server,
// which registers users on first login and manages their to-do tasks.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/droptask/droptask-api/internal/config"
	"github.com/droptask/droptask-api/internal/platform/logger"
	"github.com/droptask/droptask-api/internal/platform/mongodb"
	"github.com/joho/godotenv"
)

// main initializes configuration, sets up logging, establishes the
// document-store connection, injects dependencies, and starts the
// HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// Best-effort .env load for local development; deployed environments
	// set real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	// The store client is opened once here and closed by the application's
	// cleanup on shutdown; everything downstream receives it explicitly.
	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}
	appLogger.Info("Document store connection established")

	app, err := newApplication(ctx, cfg, appLogger, client)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
