package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// EmailStore defines the interface for outbound-email record persistence.
type EmailStore interface {
	// List returns email records ordered by ID ascending, applying the
	// page's offset and limit.
	List(ctx context.Context, page Page) ([]domain.Email, error)

	// GetByID retrieves an email record by ID.
	// Returns ErrEmailNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Email, error)

	// Create inserts a new email record and fills in its assigned ID.
	Create(ctx context.Context, email *domain.Email) error

	// WithTx returns an EmailStore bound to the provided transaction.
	WithTx(tx *sql.Tx) EmailStore
}
