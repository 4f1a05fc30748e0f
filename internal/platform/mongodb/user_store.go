package mongodb

import (
	"context"
	"log/slog"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserStore implements the store.UserStore interface
// using a MongoDB collection as the storage backend.
type MongoUserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewMongoUserStore(db *mongo.Database, logger *slog.Logger) *MongoUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for MongoUserStore")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoUserStore{
		coll:   db.Collection(usersCollection),
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
// It inserts the user document, relying on the unique email index to
// reject duplicates. Returns store.ErrEmailExists if the email is taken.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		err = MapError(err, nil, store.ErrEmailExists)
		if store.IsDuplicateError(err) {
			return err
		}
		s.logger.Error("failed to insert user",
			slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	return nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if no user has the given email.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		err = MapError(err, store.ErrUserNotFound, nil)
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to find user",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "find failed", err)
	}

	return &user, nil
}
