package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// BuyStore defines the interface for purchase-record persistence.
type BuyStore interface {
	// List returns buys ordered by ID ascending, applying the page's offset
	// and limit. Document blobs are included; callers that only need the
	// references should use the listing sparingly.
	List(ctx context.Context, page Page) ([]domain.Buy, error)

	// GetByID retrieves a buy by ID.
	// Returns ErrBuyNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Buy, error)

	// Create inserts a new buy and fills in its assigned ID.
	// Returns ErrInvalidEntity if a referenced customer, surgery, or tier
	// list does not exist.
	Create(ctx context.Context, buy *domain.Buy) error

	// Delete removes a buy by ID.
	// Returns ErrBuyNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a BuyStore bound to the provided transaction.
	WithTx(tx *sql.Tx) BuyStore
}
