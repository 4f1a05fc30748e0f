package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length limits for tasks, counted in characters (runes) rather
// than bytes so multibyte titles are measured the way users see them.
// Values at the limit are accepted.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 200
)

// Task-specific validation errors. All wrap ErrValidation so the API
// boundary can map the whole class to a 400 response.
var (
	// ErrEmptyOwner is returned when a task operation is missing the owner email.
	ErrEmptyOwner = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)

	// ErrEmptyTitle is returned when a task's title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a task's title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: task title cannot exceed 50 characters", ErrValidation)

	// ErrDescriptionTooLong is returned when a task's description exceeds
	// MaxDescriptionLength.
	ErrDescriptionTooLong = fmt.Errorf("%w: task description cannot exceed 200 characters", ErrValidation)

	// ErrInvalidCategory is returned when a task's category is not one of
	// the known board columns.
	ErrInvalidCategory = fmt.Errorf("%w: invalid task category", ErrValidation)
)

// TaskCategory identifies the board column a task sits in.
type TaskCategory string

// Board columns. Every new task starts in CategoryToDo.
const (
	CategoryToDo       TaskCategory = "To-Do"
	CategoryInProgress TaskCategory = "In Progress"
	CategoryDone       TaskCategory = "Done"
)

// IsValid reports whether the category is one of the known board columns.
func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryToDo, CategoryInProgress, CategoryDone:
		return true
	}
	return false
}

// Task represents a single to-do item belonging to one user.
// The owner is the creating user's email and never changes; every
// mutation refreshes Timestamp, which doubles as the last-modified
// instant the frontend sorts on when Position is absent.
type Task struct {
	ID          primitive.ObjectID `json:"id"                 bson:"_id,omitempty"`
	Title       string             `json:"title"              bson:"title"`
	Description string             `json:"description"        bson:"description"`
	Category    TaskCategory       `json:"category"           bson:"category"`
	Position    *int               `json:"position,omitempty" bson:"position,omitempty"`
	Timestamp   time.Time          `json:"timestamp"          bson:"timestamp"`
	Owner       string             `json:"owner"              bson:"owner"`
}

// NewTask creates a new Task owned by the given email, with the default
// category and the current time as its timestamp. The ID is left zero so
// the store can assign one on insert. Returns an error if validation fails.
func NewTask(owner, title, description string) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Category:    CategoryToDo,
		Timestamp:   time.Now().UTC(),
		Owner:       owner,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Owner == "" {
		return ErrEmptyOwner
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}

	return nil
}

// TaskPatch is a partial update for a task. Each slot is optional and
// independently settable: nil means "leave the stored value alone", a
// non-nil pointer overwrites it. Absent fields are never nulled out.
// A patch with no fields at all is valid and amounts to a timestamp-only
// refresh of the task.
type TaskPatch struct {
	Title       *string       `bson:"title,omitempty"`
	Description *string       `bson:"description,omitempty"`
	Category    *TaskCategory `bson:"category,omitempty"`
	Position    *int          `bson:"position,omitempty"`
}

// Validate checks every field present in the patch against the same
// rules that apply on creation. Returns an error for the first field
// that fails.
func (p *TaskPatch) Validate() error {
	if p.Title != nil {
		if *p.Title == "" {
			return ErrEmptyTitle
		}
		if utf8.RuneCountInString(*p.Title) > MaxTitleLength {
			return ErrTitleTooLong
		}
	}

	if p.Description != nil && utf8.RuneCountInString(*p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if p.Category != nil && !p.Category.IsValid() {
		return ErrInvalidCategory
	}

	return nil
}

// Apply merges the patch into the task, overwriting only the fields
// present in the patch, and refreshes the task's timestamp. The owner
// and ID are never touched. The patch must be validated first.
func (t *Task) Apply(patch *TaskPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Position != nil {
		t.Position = patch.Position
	}
	t.Timestamp = time.Now().UTC()
}
