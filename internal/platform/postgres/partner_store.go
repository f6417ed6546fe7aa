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

// PostgresPartnerStore implements store.PartnerStore using a PostgreSQL
// database as the storage backend.
type PostgresPartnerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPartnerStore creates a new PostgreSQL implementation of the
// PartnerStore interface.
func NewPostgresPartnerStore(db store.DBTX, logger *slog.Logger) *PostgresPartnerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPartnerStore{
		db:     db,
		logger: logger.With(slog.String("component", "partner_store")),
	}
}

// Ensure PostgresPartnerStore implements store.PartnerStore.
var _ store.PartnerStore = (*PostgresPartnerStore)(nil)

// List implements store.PartnerStore.List.
func (s *PostgresPartnerStore) List(ctx context.Context, page store.Page) ([]domain.Partner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, company_name, website, help_type, COALESCE(logo, '')
		FROM partners
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list partners",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	partners := []domain.Partner{}
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.CompanyName, &p.Website, &p.HelpType, &p.Logo); err != nil {
			log.Error("failed to scan partner row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return partners, nil
}

// GetByID implements store.PartnerStore.GetByID.
func (s *PostgresPartnerStore) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, company_name, website, help_type, COALESCE(logo, '')
		FROM partners
		WHERE id = $1
	`

	var p domain.Partner
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.CompanyName,
		&p.Website,
		&p.HelpType,
		&p.Logo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPartnerNotFound
		}
		log.Error("failed to get partner by ID",
			slog.String("error", err.Error()),
			slog.Int64("partner_id", id))
		return nil, MapError(err)
	}

	return &p, nil
}

// Create implements store.PartnerStore.Create.
func (s *PostgresPartnerStore) Create(ctx context.Context, partner *domain.Partner) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := partner.Validate(); err != nil {
		log.Warn("partner validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO partners (company_name, website, help_type, logo)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		partner.CompanyName,
		partner.Website,
		partner.HelpType,
		partner.Logo,
	).Scan(&partner.ID)
	if err != nil {
		log.Error("failed to create partner",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("partner created", slog.Int64("partner_id", partner.ID))
	return nil
}

// Update implements store.PartnerStore.Update.
func (s *PostgresPartnerStore) Update(ctx context.Context, partner *domain.Partner) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := partner.Validate(); err != nil {
		log.Warn("partner validation failed during update",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE partners
		SET company_name = $1, website = $2, help_type = $3, logo = NULLIF($4, '')
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		partner.CompanyName,
		partner.Website,
		partner.HelpType,
		partner.Logo,
		partner.ID,
	)
	if err != nil {
		log.Error("failed to update partner",
			slog.String("error", err.Error()),
			slog.Int64("partner_id", partner.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrPartnerNotFound
	}

	return nil
}

// Delete implements store.PartnerStore.Delete.
func (s *PostgresPartnerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete partner",
			slog.String("error", err.Error()),
			slog.Int64("partner_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrPartnerNotFound
	}

	log.Info("partner deleted", slog.Int64("partner_id", id))
	return nil
}

// WithTx implements store.PartnerStore.WithTx.
func (s *PostgresPartnerStore) WithTx(tx *sql.Tx) store.PartnerStore {
	return &PostgresPartnerStore{
		db:     tx,
		logger: s.logger,
	}
}
