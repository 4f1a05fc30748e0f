package service

import (
	"context"
	"log/slog"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskService provides the task CRUD operations, enforcing field limits
// on the way in and delegating ownership matching to the store, which
// applies it atomically per document.
type TaskService interface {
	// CreateTask persists a new task for the owner with the default
	// category and a fresh timestamp. Description may be empty.
	CreateTask(ctx context.Context, owner, title, description string) (*domain.Task, error)

	// ListTasks returns all of the owner's tasks, in no guaranteed order.
	ListTasks(ctx context.Context, owner string) ([]domain.Task, error)

	// UpdateTask applies a partial update to the task identified by id and
	// owner, changing only the fields present in the patch and refreshing
	// the timestamp. Returns the post-update task.
	// Returns store.ErrTaskNotFound when the task is missing or owned by
	// another user; the two cases are indistinguishable by design.
	UpdateTask(ctx context.Context, id primitive.ObjectID, owner string, patch *domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes the task identified by id and owner.
	// Returns store.ErrTaskNotFound when nothing matched, including when
	// the task was already deleted.
	DeleteTask(ctx context.Context, id primitive.ObjectID, owner string) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// CreateTask implements TaskService.CreateTask
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	owner, title, description string,
) (*domain.Task, error) {
	task, err := domain.NewTask(owner, title, description)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"owner", owner)
		return nil, err
	}

	s.logger.Debug("task created",
		"task_id", task.ID.Hex(),
		"owner", owner)
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *TaskServiceImpl) ListTasks(ctx context.Context, owner string) ([]domain.Task, error) {
	if owner == "" {
		return nil, domain.ErrEmptyOwner
	}

	tasks, err := s.taskStore.ListByOwner(ctx, owner)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"owner", owner)
		return nil, err
	}

	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	id primitive.ObjectID,
	owner string,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	if owner == "" {
		return nil, domain.ErrEmptyOwner
	}

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskStore.Update(ctx, id, owner, patch)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update task",
				"error", err,
				"task_id", id.Hex(),
				"owner", owner)
		}
		return nil, err
	}

	s.logger.Debug("task updated",
		"task_id", id.Hex(),
		"owner", owner)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id primitive.ObjectID, owner string) error {
	if owner == "" {
		return domain.ErrEmptyOwner
	}

	if err := s.taskStore.Delete(ctx, id, owner); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete task",
				"error", err,
				"task_id", id.Hex(),
				"owner", owner)
		}
		return err
	}

	s.logger.Debug("task deleted",
		"task_id", id.Hex(),
		"owner", owner)
	return nil
}
