package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/droptask/droptask-api/internal/config"
	"github.com/droptask/droptask-api/internal/platform/mongodb"
	"github.com/droptask/droptask-api/internal/service"
	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Service interfaces
	userRegistry service.UserRegistry
	taskService  service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// the document-store client that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	db := client.Database(cfg.Database.Name)

	// The stores depend on the unique users.email index for idempotent
	// registration, so missing indexes are a startup failure.
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	app.userStore = mongodb.NewMongoUserStore(db, logger)
	app.taskStore = mongodb.NewMongoTaskStore(db, logger)

	app.userRegistry = service.NewUserRegistry(app.userStore, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.client.Disconnect(ctx); err != nil {
			app.logger.Error("Error closing document store connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
