package store

import (
	"context"
	"database/sql"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// CustomerStore defines the interface for customer persistence.
type CustomerStore interface {
	// List returns customers ordered by ID ascending, applying the page's
	// offset and limit.
	List(ctx context.Context, page Page) ([]domain.Customer, error)

	// GetByID retrieves a customer by ID.
	// Returns ErrCustomerNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// Create inserts a new customer and fills in its assigned ID.
	Create(ctx context.Context, customer *domain.Customer) error

	// Update replaces all fields of an existing customer.
	// Returns ErrCustomerNotFound if it does not exist.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by ID.
	// Returns ErrCustomerNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a CustomerStore bound to the provided transaction.
	WithTx(tx *sql.Tx) CustomerStore
}
