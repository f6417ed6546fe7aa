// Package purchase implements the purchase recording flow. Recording spans
// two stores: the tier list is checked against the chosen surgery before
// the buy row is written, inside one transaction so the package cannot be
// repriced or deleted between check and insert.
package purchase

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// ErrTierMismatch indicates the tier list is priced for a different surgery
// than the one being purchased.
var ErrTierMismatch = errors.New("tier list does not belong to the surgery")

// Service records purchases.
type Service struct {
	db        *sql.DB
	buys      store.BuyStore
	tierLists store.TierListStore

	// runTx is swappable so tests can run the flow without a database.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewService creates a purchase Service.
func NewService(db *sql.DB, buys store.BuyStore, tierLists store.TierListStore) *Service {
	return &Service{
		db:        db,
		buys:      buys,
		tierLists: tierLists,
		runTx:     store.RunInTransaction,
	}
}

// Record validates the buy's references and persists it. The referenced
// tier list must exist and must be priced for the buy's surgery.
func (s *Service) Record(ctx context.Context, buy *domain.Buy) error {
	if err := buy.Validate(); err != nil {
		return err
	}

	return s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTierLists := s.tierLists.WithTx(tx)
		txBuys := s.buys.WithTx(tx)

		tierList, err := txTierLists.GetByID(ctx, buy.TierListID)
		if err != nil {
			return err
		}
		if tierList.SurgeryID != buy.SurgeryID {
			logger.FromContext(ctx).Debug("tier list surgery mismatch",
				"tier_list_id", buy.TierListID,
				"tier_list_surgery_id", tierList.SurgeryID,
				"buy_surgery_id", buy.SurgeryID)
			return ErrTierMismatch
		}

		return txBuys.Create(ctx, buy)
	})
}
