package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// TierListStore defines the interface for tier list persistence.
type TierListStore interface {
	// List returns tier lists ordered by ID ascending, applying the page's
	// offset and limit.
	List(ctx context.Context, page Page) ([]domain.TierList, error)

	// GetByID retrieves a tier list by ID.
	// Returns ErrTierListNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.TierList, error)

	// ListBySurgery returns the tier lists priced for a given surgery,
	// ordered by ID ascending.
	ListBySurgery(ctx context.Context, surgeryID int64) ([]domain.TierList, error)

	// Create inserts a new tier list and fills in its assigned ID.
	// Returns ErrInvalidEntity if the referenced surgery does not exist.
	Create(ctx context.Context, tierList *domain.TierList) error

	// Update replaces all fields of an existing tier list.
	// Returns ErrTierListNotFound if it does not exist.
	Update(ctx context.Context, tierList *domain.TierList) error

	// Delete removes a tier list by ID.
	// Returns ErrTierListNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TierListStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TierListStore
}
