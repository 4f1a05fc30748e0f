package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/mocks"
	"github.com/droptask/droptask-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateTask(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())

	task, err := svc.CreateTask(context.Background(), "a@x.com", "Buy milk", "")

	require.NoError(t, err)
	assert.False(t, task.ID.IsZero(), "store should assign an ID")
	assert.Equal(t, domain.CategoryToDo, task.Category)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, "a@x.com", task.Owner)
	assert.False(t, task.Timestamp.IsZero())
}

func TestCreateTaskValidation(t *testing.T) {
	t.Parallel()
	svc := NewTaskService(mocks.NewMockTaskStore(), newTestLogger())
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "", "Buy milk", "")
	assert.ErrorIs(t, err, domain.ErrEmptyOwner)

	_, err = svc.CreateTask(ctx, "a@x.com", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = svc.CreateTask(ctx, "a@x.com", strings.Repeat("a", domain.MaxTitleLength+1), "")
	assert.ErrorIs(t, err, domain.ErrTitleTooLong)

	_, err = svc.CreateTask(ctx, "a@x.com", "Buy milk", strings.Repeat("d", domain.MaxDescriptionLength+1))
	assert.ErrorIs(t, err, domain.ErrDescriptionTooLong)

	// Boundary values are accepted
	_, err = svc.CreateTask(ctx, "a@x.com",
		strings.Repeat("a", domain.MaxTitleLength),
		strings.Repeat("d", domain.MaxDescriptionLength))
	assert.NoError(t, err)
}

func TestListTasksScenario(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, domain.CategoryToDo, tasks[0].Category)
	assert.Equal(t, "", tasks[0].Description)
}

func TestListTasksRequiresOwner(t *testing.T) {
	t.Parallel()
	svc := NewTaskService(mocks.NewMockTaskStore(), newTestLogger())

	_, err := svc.ListTasks(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyOwner)
}

func TestListTasksEmptyForOtherOwner(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, "b@y.com")
	require.NoError(t, err)
	assert.Empty(t, tasks, "another owner's listing must not include the task")
}

func TestUpdateTaskMergesOnlySuppliedFields(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "A", "B")
	require.NoError(t, err)
	before := created.Timestamp

	time.Sleep(time.Millisecond)
	newTitle := "C"
	updated, err := svc.UpdateTask(ctx, created.ID, "a@x.com", &domain.TaskPatch{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "C", updated.Title)
	assert.Equal(t, "B", updated.Description, "absent fields must be untouched")
	assert.Equal(t, "a@x.com", updated.Owner)
	assert.True(t, updated.Timestamp.After(before), "timestamp must refresh on update")
}

func TestUpdateTaskOwnershipIsolation(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.UpdateTask(ctx, created.ID, "b@y.com", &domain.TaskPatch{Title: &newTitle})
	assert.ErrorIs(t, err, store.ErrTaskNotFound,
		"foreign tasks must be indistinguishable from missing ones")

	// The task itself is unchanged.
	tasks, err := svc.ListTasks(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
}

func TestUpdateTaskValidation(t *testing.T) {
	t.Parallel()
	svc := NewTaskService(mocks.NewMockTaskStore(), newTestLogger())
	ctx := context.Background()
	id := primitive.NewObjectID()

	newTitle := "T"
	_, err := svc.UpdateTask(ctx, id, "", &domain.TaskPatch{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrEmptyOwner)

	longTitle := strings.Repeat("a", domain.MaxTitleLength+1)
	_, err = svc.UpdateTask(ctx, id, "a@x.com", &domain.TaskPatch{Title: &longTitle})
	assert.ErrorIs(t, err, domain.ErrTitleTooLong)
}

func TestUpdateTaskEmptyPatchRefreshesTimestamp(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "from the shop")
	require.NoError(t, err)
	before := created.Timestamp

	time.Sleep(time.Millisecond)
	updated, err := svc.UpdateTask(ctx, created.ID, "a@x.com", &domain.TaskPatch{})

	require.NoError(t, err, "a patch with no fields is a valid timestamp-only refresh")
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "from the shop", updated.Description)
	assert.True(t, updated.Timestamp.After(before))
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID, "a@x.com"))

	tasks, err := svc.ListTasks(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteTaskOwnershipIsolation(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	err = svc.DeleteTask(ctx, created.ID, "b@y.com")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	tasks, err := svc.ListTasks(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "foreign delete must not remove the task")
}

func TestDeleteTaskNotIdempotent(t *testing.T) {
	t.Parallel()
	taskStore := mocks.NewMockTaskStore()
	svc := NewTaskService(taskStore, newTestLogger())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "a@x.com", "Buy milk", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID, "a@x.com"))

	// Deleting again must fail, not silently succeed.
	err = svc.DeleteTask(ctx, created.ID, "a@x.com")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.DeleteTask(ctx, created.ID, "")
	assert.ErrorIs(t, err, domain.ErrEmptyOwner)
}
