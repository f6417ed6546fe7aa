package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/nugomed/nugomed-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's plaintext Password
	// is hashed internally; the plaintext is never persisted.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username (exact match).
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore that runs against the provided transaction,
	// so multiple operations can share a single unit of work.
	WithTx(tx *sql.Tx) UserStore
}
