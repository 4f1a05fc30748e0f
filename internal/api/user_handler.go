package api

import (
	"log/slog"
	"net/http"

	"github.com/droptask/droptask-api/internal/api/shared"
	"github.com/droptask/droptask-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	registry service.UserRegistry
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(registry service.UserRegistry, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "user_handler")),
	}
}

// RegisterUser handles POST /users requests.
// It stores user info only on first login; later calls are no-ops that
// report inserted=false.
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Email and display name are required.", err)
		return
	}

	// The legacy uid field is accepted for old clients but deliberately not
	// stored; email is the user key.
	_, created, err := h.registry.RegisterUser(r.Context(), req.Email, req.DisplayName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	message := "User added successfully"
	if !created {
		message = "User already exists"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RegisterUserResponse{
		Message:  message,
		Inserted: created,
	})
}
