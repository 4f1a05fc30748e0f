package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskStore implements the store.TaskStore interface
// using a MongoDB collection as the storage backend.
//
// Ownership is enforced inside the store: every mutating filter matches
// both _id and owner in one atomic document operation, so a caller can
// never observe whether a non-matching task is missing or someone else's.
type MongoTaskStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoTaskStore creates a new MongoDB implementation of the TaskStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewMongoTaskStore(db *mongo.Database, logger *slog.Logger) *MongoTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for MongoTaskStore")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoTaskStore{
		coll:   db.Collection(tasksCollection),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MongoTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MongoTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts the task document and copies the assigned ObjectID back onto
// the task.
func (s *MongoTaskStore) Create(ctx context.Context, task *domain.Task) error {
	result, err := s.coll.InsertOne(ctx, task)
	if err != nil {
		s.logger.Error("failed to insert task",
			slog.String("error", err.Error()),
			slog.String("owner", task.Owner))
		return store.NewStoreError("task", "create", "insert failed", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = id
	}

	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner
// The query hits the tasks.owner index; no sort is applied.
func (s *MongoTaskStore) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		s.logger.Error("failed to query tasks",
			slog.String("error", err.Error()),
			slog.String("owner", owner))
		return nil, store.NewStoreError("task", "list", "find failed", err)
	}

	tasks := []domain.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		s.logger.Error("failed to decode tasks",
			slog.String("error", err.Error()),
			slog.String("owner", owner))
		return nil, store.NewStoreError("task", "list", "cursor decode failed", err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
// It issues a single findOneAndUpdate matching both _id and owner, setting
// only the fields present in the patch plus the refreshed timestamp, and
// returns the post-update document. Returns store.ErrTaskNotFound when no
// document matches the id+owner pair.
func (s *MongoTaskStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	owner string,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	set := bson.M{"timestamp": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Position != nil {
		set["position"] = *patch.Position
	}

	var updated domain.Task
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		err = MapError(err, store.ErrTaskNotFound, nil)
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.Hex()),
			slog.String("owner", owner))
		return nil, store.NewStoreError("task", "update", "findOneAndUpdate failed", err)
	}

	return &updated, nil
}

// Delete implements store.TaskStore.Delete
// A zero deleted count maps to store.ErrTaskNotFound: delete is not
// idempotent-success, and the owner filter keeps foreign tasks
// indistinguishable from missing ones.
func (s *MongoTaskStore) Delete(ctx context.Context, id primitive.ObjectID, owner string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		s.logger.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.Hex()),
			slog.String("owner", owner))
		return store.NewStoreError("task", "delete", "deleteOne failed", err)
	}

	return CheckDeletedCount(result, store.ErrTaskNotFound)
}
