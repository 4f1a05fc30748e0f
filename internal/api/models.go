package api

import (
	"time"

	"github.com/droptask/droptask-api/internal/domain"
)

// Common request/response structures

// RegisterUserRequest defines the payload for the user registration endpoint.
// UID is the legacy identifier from the earlier auth scheme; clients may still
// send it, but registration ignores it and users are keyed by email.
type RegisterUserRequest struct {
	Email       string `json:"email"         validate:"required,email"`
	DisplayName string `json:"displayName"   validate:"required"`
	UID         string `json:"uid,omitempty" validate:"omitempty"`
}

// RegisterUserResponse defines the response for the user registration
// endpoint. Inserted is false when the user already existed.
type RegisterUserResponse struct {
	Message  string `json:"message"`
	Inserted bool   `json:"inserted"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// Owner is the creating user's email.
type CreateTaskRequest struct {
	Title       string `json:"title"                 validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=200"`
	Owner       string `json:"owner"                 validate:"required,email"`
}

// UpdateTaskRequest defines the payload for the partial-update endpoint.
// Pointer fields distinguish "absent" from "set to zero value": only fields
// present in the body are applied to the stored task.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Category    *string `json:"category,omitempty"    validate:"omitempty,oneof=To-Do 'In Progress' Done"`
	Position    *int    `json:"position,omitempty"`
	Owner       string  `json:"owner"                 validate:"required,email"`
}

// DeleteTaskRequest defines the payload for the task deletion endpoint.
type DeleteTaskRequest struct {
	Owner string `json:"owner" validate:"required,email"`
}

// MessageResponse is the minimal success envelope used by endpoints that
// return no entity body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Position    *int      `json:"position,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Owner       string    `json:"owner"`
}

// UpdateTaskResponse defines the response for the partial-update endpoint,
// carrying the post-update task.
type UpdateTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.Hex(),
		Title:       task.Title,
		Description: task.Description,
		Category:    string(task.Category),
		Position:    task.Position,
		Timestamp:   task.Timestamp,
		Owner:       task.Owner,
	}
}
