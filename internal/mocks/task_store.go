package mocks

import (
	"context"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation keeps tasks in a map keyed by ObjectID and
// applies the same id+owner matching as the real store, so ownership
// isolation can be exercised without a database.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn func(ctx context.Context, owner string) ([]domain.Task, error)
	UpdateFn      func(ctx context.Context, id primitive.ObjectID, owner string, patch *domain.TaskPatch) (*domain.Task, error)
	DeleteFn      func(ctx context.Context, id primitive.ObjectID, owner string) error

	// Data for default implementation
	Tasks       map[primitive.ObjectID]*domain.Task
	CreateError error
	ListError   error
	UpdateError error
	DeleteError error
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[primitive.ObjectID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// ListByOwner implements the TaskStore interface
func (m *MockTaskStore) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, owner)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := []domain.Task{}
	for _, task := range m.Tasks {
		if task.Owner == owner {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	owner string,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, owner, patch)
	}

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	task, exists := m.Tasks[id]
	if !exists || task.Owner != owner {
		return nil, store.ErrTaskNotFound
	}

	task.Apply(patch)
	copied := *task
	return &copied, nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id primitive.ObjectID, owner string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, owner)
	}

	if m.DeleteError != nil {
		return m.DeleteError
	}

	task, exists := m.Tasks[id]
	if !exists || task.Owner != owner {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}
