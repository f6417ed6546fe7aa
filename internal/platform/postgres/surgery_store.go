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

// PostgresSurgeryStore implements store.SurgeryStore using a PostgreSQL
// database as the storage backend.
type PostgresSurgeryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSurgeryStore creates a new PostgreSQL implementation of the
// SurgeryStore interface.
func NewPostgresSurgeryStore(db store.DBTX, logger *slog.Logger) *PostgresSurgeryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSurgeryStore{
		db:     db,
		logger: logger.With(slog.String("component", "surgery_store")),
	}
}

// Ensure PostgresSurgeryStore implements store.SurgeryStore.
var _ store.SurgeryStore = (*PostgresSurgeryStore)(nil)

// List implements store.SurgeryStore.List. Rows come back ordered by ID
// ascending so repeated reads are deterministic.
func (s *PostgresSurgeryStore) List(ctx context.Context, page store.Page) ([]domain.Surgery, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, surgery, surgery_description, partner_id
		FROM surgeries
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list surgeries",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	surgeries := []domain.Surgery{}
	for rows.Next() {
		var surgery domain.Surgery
		if err := rows.Scan(
			&surgery.ID,
			&surgery.Surgery,
			&surgery.SurgeryDescription,
			&surgery.PartnerID,
		); err != nil {
			log.Error("failed to scan surgery row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		surgeries = append(surgeries, surgery)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return surgeries, nil
}

// GetByID implements store.SurgeryStore.GetByID.
func (s *PostgresSurgeryStore) GetByID(ctx context.Context, id int64) (*domain.Surgery, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, surgery, surgery_description, partner_id
		FROM surgeries
		WHERE id = $1
	`

	var surgery domain.Surgery
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&surgery.ID,
		&surgery.Surgery,
		&surgery.SurgeryDescription,
		&surgery.PartnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSurgeryNotFound
		}
		log.Error("failed to get surgery by ID",
			slog.String("error", err.Error()),
			slog.Int64("surgery_id", id))
		return nil, MapError(err)
	}

	return &surgery, nil
}

// Create implements store.SurgeryStore.Create.
func (s *PostgresSurgeryStore) Create(ctx context.Context, surgery *domain.Surgery) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := surgery.Validate(); err != nil {
		log.Warn("surgery validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO surgeries (surgery, surgery_description, partner_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		surgery.Surgery,
		surgery.SurgeryDescription,
		surgery.PartnerID,
	).Scan(&surgery.ID)
	if err != nil {
		log.Error("failed to create surgery",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("surgery created", slog.Int64("surgery_id", surgery.ID))
	return nil
}

// Update implements store.SurgeryStore.Update.
func (s *PostgresSurgeryStore) Update(ctx context.Context, surgery *domain.Surgery) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := surgery.Validate(); err != nil {
		log.Warn("surgery validation failed during update",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE surgeries
		SET surgery = $1, surgery_description = $2, partner_id = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		surgery.Surgery,
		surgery.SurgeryDescription,
		surgery.PartnerID,
		surgery.ID,
	)
	if err != nil {
		log.Error("failed to update surgery",
			slog.String("error", err.Error()),
			slog.Int64("surgery_id", surgery.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrSurgeryNotFound
	}

	return nil
}

// Delete implements store.SurgeryStore.Delete.
func (s *PostgresSurgeryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM surgeries WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete surgery",
			slog.String("error", err.Error()),
			slog.Int64("surgery_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrSurgeryNotFound
	}

	log.Info("surgery deleted", slog.Int64("surgery_id", id))
	return nil
}

// WithTx implements store.SurgeryStore.WithTx.
func (s *PostgresSurgeryStore) WithTx(tx *sql.Tx) store.SurgeryStore {
	return &PostgresSurgeryStore{
		db:     tx,
		logger: s.logger,
	}
}
