package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/droptask/droptask-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names within the application database.
const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

// connectTimeout bounds the initial connection and ping.
const connectTimeout = 5 * time.Second

// Connect opens a client against the configured MongoDB deployment and
// verifies connectivity with a ping. The returned client must be
// disconnected by the caller on shutdown; it is the single process-wide
// handle and is passed explicitly into the stores rather than held as a
// package global.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Disconnect with a fresh context; the ping one may be spent.
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), connectTimeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the stores depend on: a unique index
// on users.email (the user key, and the guard against duplicate first-login
// registrations racing), and a non-unique index on tasks.owner for
// efficient per-user listing. Index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}

	_, err = db.Collection(tasksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tasks.owner index: %w", err)
	}

	return nil
}
