package store

import (
	"context"

	"github.com/droptask/droptask-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStore defines the interface for task data persistence.
//
// Every mutating operation takes the owner email alongside the task ID and
// matches both in a single atomic document operation. Implementations must
// return ErrTaskNotFound when no document matches, whether the task is
// missing or owned by a different user.
type TaskStore interface {
	// Create saves a new task to the store and fills in the store-assigned
	// ID on the given task. The caller is responsible for domain validation
	// before calling.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves all tasks whose owner field equals the given
	// email. The store applies no ordering guarantee; callers sort by
	// Position when present. Returns an empty slice when the owner has no
	// tasks.
	ListByOwner(ctx context.Context, owner string) ([]domain.Task, error)

	// Update applies the patch to the task matching both id and owner in a
	// single find-and-update, refreshing the task's timestamp, and returns
	// the post-update document. Fields absent from the patch are left
	// untouched. Returns ErrTaskNotFound if no task matches.
	Update(ctx context.Context, id primitive.ObjectID, owner string, patch *domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task matching both id and owner.
	// Returns ErrTaskNotFound if no task matches; deleting an already
	// deleted task is not reported as success.
	Delete(ctx context.Context, id primitive.ObjectID, owner string) error
}
