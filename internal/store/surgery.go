package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// SurgeryStore defines the interface for surgery catalogue persistence.
type SurgeryStore interface {
	// List returns surgeries ordered by ID ascending, applying the page's
	// offset and limit.
	List(ctx context.Context, page Page) ([]domain.Surgery, error)

	// GetByID retrieves a surgery by ID.
	// Returns ErrSurgeryNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Surgery, error)

	// Create inserts a new surgery and fills in its assigned ID.
	// Returns ErrInvalidEntity if the referenced partner does not exist.
	Create(ctx context.Context, surgery *domain.Surgery) error

	// Update replaces all fields of an existing surgery.
	// Returns ErrSurgeryNotFound if it does not exist.
	Update(ctx context.Context, surgery *domain.Surgery) error

	// Delete removes a surgery by ID.
	// Returns ErrSurgeryNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a SurgeryStore bound to the provided transaction.
	WithTx(tx *sql.Tx) SurgeryStore
}
