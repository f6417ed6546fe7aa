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

// PostgresTierListStore implements store.TierListStore using a PostgreSQL
// database as the storage backend.
type PostgresTierListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTierListStore creates a new PostgreSQL implementation of the
// TierListStore interface.
func NewPostgresTierListStore(db store.DBTX, logger *slog.Logger) *PostgresTierListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTierListStore{
		db:     db,
		logger: logger.With(slog.String("component", "tier_list_store")),
	}
}

// Ensure PostgresTierListStore implements store.TierListStore.
var _ store.TierListStore = (*PostgresTierListStore)(nil)

const tierListColumns = `id, tier, surgery_id, visa_sponsorship, flight_type,
	number_family_members, hospital_accommodations, hotel, duration_stay,
	tourism_package, post_surgery_monitoring, price`

func scanTierList(row interface{ Scan(dest ...any) error }, t *domain.TierList) error {
	return row.Scan(
		&t.ID,
		&t.Tier,
		&t.SurgeryID,
		&t.VisaSponsorship,
		&t.FlightType,
		&t.NumberFamilyMembers,
		&t.HospitalAccommodations,
		&t.Hotel,
		&t.DurationStay,
		&t.TourismPackage,
		&t.PostSurgeryMonitoring,
		&t.Price,
	)
}

// List implements store.TierListStore.List.
func (s *PostgresTierListStore) List(ctx context.Context, page store.Page) ([]domain.TierList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + tierListColumns + `
		FROM tier_lists
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list tier lists",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tierLists := []domain.TierList{}
	for rows.Next() {
		var t domain.TierList
		if err := scanTierList(rows, &t); err != nil {
			log.Error("failed to scan tier list row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		tierLists = append(tierLists, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tierLists, nil
}

// GetByID implements store.TierListStore.GetByID.
func (s *PostgresTierListStore) GetByID(ctx context.Context, id int64) (*domain.TierList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + tierListColumns + `
		FROM tier_lists
		WHERE id = $1
	`

	var t domain.TierList
	if err := scanTierList(s.db.QueryRowContext(ctx, query, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTierListNotFound
		}
		log.Error("failed to get tier list by ID",
			slog.String("error", err.Error()),
			slog.Int64("tier_list_id", id))
		return nil, MapError(err)
	}

	return &t, nil
}

// ListBySurgery implements store.TierListStore.ListBySurgery.
func (s *PostgresTierListStore) ListBySurgery(ctx context.Context, surgeryID int64) ([]domain.TierList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + tierListColumns + `
		FROM tier_lists
		WHERE surgery_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, surgeryID)
	if err != nil {
		log.Error("failed to list tier lists by surgery",
			slog.String("error", err.Error()),
			slog.Int64("surgery_id", surgeryID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tierLists := []domain.TierList{}
	for rows.Next() {
		var t domain.TierList
		if err := scanTierList(rows, &t); err != nil {
			return nil, MapError(err)
		}
		tierLists = append(tierLists, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tierLists, nil
}

// Create implements store.TierListStore.Create.
func (s *PostgresTierListStore) Create(ctx context.Context, tierList *domain.TierList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tierList.Validate(); err != nil {
		log.Warn("tier list validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tier_lists (tier, surgery_id, visa_sponsorship, flight_type,
			number_family_members, hospital_accommodations, hotel, duration_stay,
			tourism_package, post_surgery_monitoring, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		tierList.Tier,
		tierList.SurgeryID,
		tierList.VisaSponsorship,
		tierList.FlightType,
		tierList.NumberFamilyMembers,
		tierList.HospitalAccommodations,
		tierList.Hotel,
		tierList.DurationStay,
		tierList.TourismPackage,
		tierList.PostSurgeryMonitoring,
		tierList.Price,
	).Scan(&tierList.ID)
	if err != nil {
		log.Error("failed to create tier list",
			slog.String("error", err.Error()),
			slog.Int64("surgery_id", tierList.SurgeryID))
		return MapError(err)
	}

	log.Info("tier list created",
		slog.Int64("tier_list_id", tierList.ID),
		slog.Int64("surgery_id", tierList.SurgeryID))
	return nil
}

// Update implements store.TierListStore.Update.
func (s *PostgresTierListStore) Update(ctx context.Context, tierList *domain.TierList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tierList.Validate(); err != nil {
		log.Warn("tier list validation failed during update",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE tier_lists
		SET tier = $1, surgery_id = $2, visa_sponsorship = $3, flight_type = $4,
			number_family_members = $5, hospital_accommodations = $6, hotel = $7,
			duration_stay = $8, tourism_package = $9, post_surgery_monitoring = $10,
			price = $11
		WHERE id = $12
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		tierList.Tier,
		tierList.SurgeryID,
		tierList.VisaSponsorship,
		tierList.FlightType,
		tierList.NumberFamilyMembers,
		tierList.HospitalAccommodations,
		tierList.Hotel,
		tierList.DurationStay,
		tierList.TourismPackage,
		tierList.PostSurgeryMonitoring,
		tierList.Price,
		tierList.ID,
	)
	if err != nil {
		log.Error("failed to update tier list",
			slog.String("error", err.Error()),
			slog.Int64("tier_list_id", tierList.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrTierListNotFound
	}

	return nil
}

// Delete implements store.TierListStore.Delete.
func (s *PostgresTierListStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tier_lists WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete tier list",
			slog.String("error", err.Error()),
			slog.Int64("tier_list_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrTierListNotFound
	}

	log.Info("tier list deleted", slog.Int64("tier_list_id", id))
	return nil
}

// WithTx implements store.TierListStore.WithTx.
func (s *PostgresTierListStore) WithTx(tx *sql.Tx) store.TierListStore {
	return &PostgresTierListStore{
		db:     tx,
		logger: s.logger,
	}
}
