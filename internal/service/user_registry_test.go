package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/droptask/droptask-api/internal/domain"
	"github.com/droptask/droptask-api/internal/mocks"
	"github.com/droptask/droptask-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.Default()
}

func TestRegisterUserFirstLogin(t *testing.T) {
	t.Parallel()
	userStore := mocks.NewMockUserStore()
	registry := NewUserRegistry(userStore, newTestLogger())

	user, created, err := registry.RegisterUser(context.Background(), "a@x.com", "Ada")

	require.NoError(t, err)
	assert.True(t, created, "first login should create the user")
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ada", user.DisplayName)
	assert.Contains(t, userStore.Users, "a@x.com")
}

func TestRegisterUserIsIdempotent(t *testing.T) {
	t.Parallel()
	userStore := mocks.NewMockUserStore()
	registry := NewUserRegistry(userStore, newTestLogger())

	first, created, err := registry.RegisterUser(context.Background(), "a@x.com", "Ada")
	require.NoError(t, err)
	require.True(t, created)

	// Second login, even with a different display name, must not modify
	// the stored record.
	second, created, err := registry.RegisterUser(context.Background(), "a@x.com", "Ada Lovelace")
	require.NoError(t, err)
	assert.False(t, created, "second login should report created=false")
	assert.Equal(t, first.DisplayName, second.DisplayName, "stored record must be unchanged")
	assert.Equal(t, 1, userStore.CreateCalls, "only the first login should insert")
}

func TestRegisterUserValidation(t *testing.T) {
	t.Parallel()
	registry := NewUserRegistry(mocks.NewMockUserStore(), newTestLogger())

	_, _, err := registry.RegisterUser(context.Background(), "", "Ada")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = registry.RegisterUser(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = registry.RegisterUser(context.Background(), "not-an-email", "Ada")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestRegisterUserInsertRace(t *testing.T) {
	t.Parallel()
	userStore := mocks.NewMockUserStore()

	// Lookup misses, then the insert hits the unique index because a
	// concurrent first login won the race.
	winner := &domain.User{Email: "a@x.com", DisplayName: "Ada"}
	userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		if userStore.CreateCalls == 0 {
			return nil, store.ErrUserNotFound
		}
		return winner, nil
	}
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		return store.ErrEmailExists
	}

	registry := NewUserRegistry(userStore, newTestLogger())
	user, created, err := registry.RegisterUser(context.Background(), "a@x.com", "Ada")

	require.NoError(t, err)
	assert.False(t, created, "losing the insert race should report created=false")
	assert.Equal(t, winner, user)
}

func TestRegisterUserStoreFailure(t *testing.T) {
	t.Parallel()
	userStore := mocks.NewMockUserStore()
	userStore.GetByEmailError = store.NewStoreError("user", "get", "find failed", errors.New("connection reset"))

	registry := NewUserRegistry(userStore, newTestLogger())
	_, _, err := registry.RegisterUser(context.Background(), "a@x.com", "Ada")

	require.Error(t, err)
	var storeErr *store.StoreError
	assert.ErrorAs(t, err, &storeErr)
}
