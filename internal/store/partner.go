package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// PartnerStore defines the interface for partner persistence.
type PartnerStore interface {
	// List returns partners ordered by ID ascending, applying the page's
	// offset and limit.
	List(ctx context.Context, page Page) ([]domain.Partner, error)

	// GetByID retrieves a partner by ID.
	// Returns ErrPartnerNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)

	// Create inserts a new partner and fills in its assigned ID.
	Create(ctx context.Context, partner *domain.Partner) error

	// Update replaces all fields of an existing partner.
	// Returns ErrPartnerNotFound if it does not exist.
	Update(ctx context.Context, partner *domain.Partner) error

	// Delete removes a partner by ID.
	// Returns ErrPartnerNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PartnerStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PartnerStore
}
