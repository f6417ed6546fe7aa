package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// PostgresCustomerStore implements store.CustomerStore using a PostgreSQL
// database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the
// CustomerStore interface.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore.
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

const customerColumns = `id, full_name, contact_email, birthdate,
	COALESCE(national_id_number, ''), COALESCE(passport_number, ''),
	country_of_origin, denied_visa`

func scanCustomer(row interface{ Scan(dest ...any) error }, c *domain.Customer) error {
	return row.Scan(
		&c.ID,
		&c.FullName,
		&c.ContactEmail,
		&c.Birthdate,
		&c.NationalIDNumber,
		&c.PassportNumber,
		&c.CountryOfOrigin,
		&c.DeniedVisa,
	)
}

// List implements store.CustomerStore.List.
func (s *PostgresCustomerStore) List(ctx context.Context, page store.Page) ([]domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list customers",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			log.Error("failed to scan customer row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return customers, nil
}

// GetByID implements store.CustomerStore.GetByID.
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1
	`

	var c domain.Customer
	if err := scanCustomer(s.db.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by ID",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", id))
		return nil, MapError(err)
	}

	return &c, nil
}

// Create implements store.CustomerStore.Create.
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO customers (full_name, contact_email, birthdate,
			national_id_number, passport_number, country_of_origin, denied_visa)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		customer.FullName,
		customer.ContactEmail,
		customer.Birthdate,
		customer.NationalIDNumber,
		customer.PassportNumber,
		customer.CountryOfOrigin,
		customer.DeniedVisa,
	).Scan(&customer.ID)
	if err != nil {
		log.Error("failed to create customer",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("customer created", slog.Int64("customer_id", customer.ID))
	return nil
}

// Update implements store.CustomerStore.Update.
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during update",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE customers
		SET full_name = $1, contact_email = $2, birthdate = $3,
			national_id_number = NULLIF($4, ''), passport_number = NULLIF($5, ''),
			country_of_origin = $6, denied_visa = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		customer.FullName,
		customer.ContactEmail,
		customer.Birthdate,
		customer.NationalIDNumber,
		customer.PassportNumber,
		customer.CountryOfOrigin,
		customer.DeniedVisa,
		customer.ID,
	)
	if err != nil {
		log.Error("failed to update customer",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customer.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrCustomerNotFound
	}

	return nil
}

// Delete implements store.CustomerStore.Delete.
func (s *PostgresCustomerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrCustomerNotFound
	}

	log.Info("customer deleted", slog.Int64("customer_id", id))
	return nil
}

// WithTx implements store.CustomerStore.WithTx.
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{
		db:     tx,
		logger: s.logger,
	}
}
