package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/store"
)

// UserRegistry ensures a User record exists for every login.
type UserRegistry interface {
	// RegisterUser creates a User on first login and is a no-op on every
	// later login. Returns the stored user and whether this call created it.
	// Returns a validation error if email or display name is missing or
	// malformed.
	RegisterUser(ctx context.Context, email, displayName string) (*domain.User, bool, error)
}

// UserRegistryImpl implements the UserRegistry interface
type UserRegistryImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserRegistry creates a new UserRegistry
func NewUserRegistry(userStore store.UserStore, logger *slog.Logger) UserRegistry {
	return &UserRegistryImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_registry"),
	}
}

// RegisterUser implements UserRegistry.RegisterUser
func (s *UserRegistryImpl) RegisterUser(
	ctx context.Context,
	email, displayName string,
) (*domain.User, bool, error) {
	user, err := domain.NewUser(email, displayName)
	if err != nil {
		return nil, false, err
	}

	// First login wins; every later login finds the existing record and
	// leaves it untouched.
	existing, err := s.userStore.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to look up user",
			"error", err,
			"email", user.Email)
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		// Two first logins can race past the lookup; the unique email
		// index breaks the tie and the loser reports created=false.
		if errors.Is(err, store.ErrEmailExists) {
			existing, lookupErr := s.userStore.GetByEmail(ctx, user.Email)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("failed to look up user after duplicate insert: %w", lookupErr)
			}
			return existing, false, nil
		}
		s.logger.Error("failed to create user",
			"error", err,
			"email", user.Email)
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("registered new user", "email", user.Email)
	return user, true, nil
}
