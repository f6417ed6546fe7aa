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

// PostgresBuyStore implements store.BuyStore using a PostgreSQL database
// as the storage backend. Document blobs live in bytea columns next to the
// purchase row.
type PostgresBuyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBuyStore creates a new PostgreSQL implementation of the
// BuyStore interface.
func NewPostgresBuyStore(db store.DBTX, logger *slog.Logger) *PostgresBuyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBuyStore{
		db:     db,
		logger: logger.With(slog.String("component", "buy_store")),
	}
}

// Ensure PostgresBuyStore implements store.BuyStore.
var _ store.BuyStore = (*PostgresBuyStore)(nil)

const buyColumns = `id, customer_id, surgery_id, tier_list_id, price,
	schengen_area, valid_photo, id_scan, medical_dossier, trip_clearance_doc,
	oral_care_implant_plan, hair_care_implant_plan, visa_documents,
	visa_application_form, identical_photos, passport_copy,
	medical_travel_insurance, proof_of_financial_means, guarantee_letter`

func scanBuy(row interface{ Scan(dest ...any) error }, b *domain.Buy) error {
	return row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.SurgeryID,
		&b.TierListID,
		&b.Price,
		&b.SchengenArea,
		&b.ValidPhoto,
		&b.IDScan,
		&b.MedicalDossier,
		&b.TripClearanceDoc,
		&b.OralCareImplantPlan,
		&b.HairCareImplantPlan,
		&b.VisaDocuments,
		&b.VisaApplicationForm,
		&b.IdenticalPhotos,
		&b.PassportCopy,
		&b.MedicalTravelInsurance,
		&b.ProofOfFinancialMeans,
		&b.GuaranteeLetter,
	)
}

// List implements store.BuyStore.List.
func (s *PostgresBuyStore) List(ctx context.Context, page store.Page) ([]domain.Buy, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + buyColumns + `
		FROM buys
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list buys",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	buys := []domain.Buy{}
	for rows.Next() {
		var b domain.Buy
		if err := scanBuy(rows, &b); err != nil {
			log.Error("failed to scan buy row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		buys = append(buys, b)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return buys, nil
}

// GetByID implements store.BuyStore.GetByID.
func (s *PostgresBuyStore) GetByID(ctx context.Context, id int64) (*domain.Buy, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + buyColumns + `
		FROM buys
		WHERE id = $1
	`

	var b domain.Buy
	if err := scanBuy(s.db.QueryRowContext(ctx, query, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBuyNotFound
		}
		log.Error("failed to get buy by ID",
			slog.String("error", err.Error()),
			slog.Int64("buy_id", id))
		return nil, MapError(err)
	}

	return &b, nil
}

// Create implements store.BuyStore.Create.
func (s *PostgresBuyStore) Create(ctx context.Context, buy *domain.Buy) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := buy.Validate(); err != nil {
		log.Warn("buy validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO buys (customer_id, surgery_id, tier_list_id, price,
			schengen_area, valid_photo, id_scan, medical_dossier,
			trip_clearance_doc, oral_care_implant_plan, hair_care_implant_plan,
			visa_documents, visa_application_form, identical_photos,
			passport_copy, medical_travel_insurance, proof_of_financial_means,
			guarantee_letter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		buy.CustomerID,
		buy.SurgeryID,
		buy.TierListID,
		buy.Price,
		buy.SchengenArea,
		buy.ValidPhoto,
		buy.IDScan,
		buy.MedicalDossier,
		buy.TripClearanceDoc,
		buy.OralCareImplantPlan,
		buy.HairCareImplantPlan,
		buy.VisaDocuments,
		buy.VisaApplicationForm,
		buy.IdenticalPhotos,
		buy.PassportCopy,
		buy.MedicalTravelInsurance,
		buy.ProofOfFinancialMeans,
		buy.GuaranteeLetter,
	).Scan(&buy.ID)
	if err != nil {
		log.Error("failed to create buy",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", buy.CustomerID))
		return MapError(err)
	}

	log.Info("buy created",
		slog.Int64("buy_id", buy.ID),
		slog.Int64("customer_id", buy.CustomerID))
	return nil
}

// Delete implements store.BuyStore.Delete.
func (s *PostgresBuyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM buys WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete buy",
			slog.String("error", err.Error()),
			slog.Int64("buy_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrBuyNotFound
	}

	log.Info("buy deleted", slog.Int64("buy_id", id))
	return nil
}

// WithTx implements store.BuyStore.WithTx.
func (s *PostgresBuyStore) WithTx(tx *sql.Tx) store.BuyStore {
	return &PostgresBuyStore{
		db:     tx,
		logger: s.logger,
	}
}
