package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/jortega-dev/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's plaintext Password is
	// hashed by the implementation before storage and cleared afterwards.
	// Returns ErrEmailExists or ErrUsernameExists on unique violations, and
	// domain validation errors wrapped in ErrInvalidEntity.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
