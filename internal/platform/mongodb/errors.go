package mongodb

import (
	"errors"
	"fmt"

	"github.com/droptask/droptask-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// duplicateKeyCode is the MongoDB server error code for unique index violations.
const duplicateKeyCode = 11000

// MapError maps a driver error to the store error taxonomy.
// It wraps the original error to preserve context and provide better
// debugging information. This function should be used in all store
// operations to ensure consistent error handling.
//
// notFound and duplicate are the entity-specific sentinels to wrap with
// (e.g. store.ErrTaskNotFound, store.ErrEmailExists); pass nil to fall
// back to the generic store.ErrNotFound / store.ErrDuplicate.
func MapError(err error, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		if notFound == nil {
			notFound = store.ErrNotFound
		}
		return fmt.Errorf("%w: %v", notFound, err)
	}

	if IsDuplicateKey(err) {
		if duplicate == nil {
			duplicate = store.ErrDuplicate
		}
		return fmt.Errorf("%w: %v", duplicate, err)
	}

	return err
}

// IsDuplicateKey checks if the given error is a MongoDB unique index
// violation. This is useful for detecting records that violate the
// users.email uniqueness guarantee.
func IsDuplicateKey(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}

	// IsDuplicateKeyError misses bare WriteError values outside a
	// WriteException, which some driver paths surface directly.
	var writeErr mongo.WriteError
	if errors.As(err, &writeErr) && writeErr.Code == duplicateKeyCode {
		return true
	}

	return false
}

// CheckDeletedCount examines the number of documents removed by a delete.
// If nothing was deleted, it returns the entity's not-found error: for
// owned entities the filter includes the owner, so a zero count covers
// both a missing document and one belonging to another user.
func CheckDeletedCount(result *mongo.DeleteResult, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckDeletedCount")
	}

	if result.DeletedCount == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
