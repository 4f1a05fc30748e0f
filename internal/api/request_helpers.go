package api

import (
	"fmt"
	"net/http"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getPathObjectID extracts a MongoDB ObjectID from the URL path parameters.
// It parses and validates the ID, handling common error cases.
//
// Returns the parsed ObjectID, or a domain.ErrInvalidID-wrapped error if
// the parameter is missing or malformed.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}
