package purchase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/store"
)

type stubBuyStore struct {
	created []domain.Buy
}

func (s *stubBuyStore) List(ctx context.Context, page store.Page) ([]domain.Buy, error) {
	return nil, nil
}

func (s *stubBuyStore) GetByID(ctx context.Context, id int64) (*domain.Buy, error) {
	return nil, store.ErrBuyNotFound
}

func (s *stubBuyStore) Create(ctx context.Context, buy *domain.Buy) error {
	buy.ID = int64(len(s.created) + 1)
	s.created = append(s.created, *buy)
	return nil
}

func (s *stubBuyStore) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubBuyStore) WithTx(tx *sql.Tx) store.BuyStore { return s }

type stubTierListStore struct {
	rows map[int64]domain.TierList
}

func (s *stubTierListStore) List(ctx context.Context, page store.Page) ([]domain.TierList, error) {
	return nil, nil
}

func (s *stubTierListStore) GetByID(ctx context.Context, id int64) (*domain.TierList, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, store.ErrTierListNotFound
	}
	return &row, nil
}

func (s *stubTierListStore) ListBySurgery(ctx context.Context, surgeryID int64) ([]domain.TierList, error) {
	return nil, nil
}

func (s *stubTierListStore) Create(ctx context.Context, tierList *domain.TierList) error {
	return nil
}

func (s *stubTierListStore) Update(ctx context.Context, tierList *domain.TierList) error {
	return nil
}

func (s *stubTierListStore) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubTierListStore) WithTx(tx *sql.Tx) store.TierListStore { return s }

func newTestService(buys *stubBuyStore, tierLists *stubTierListStore) *Service {
	svc := NewService(nil, buys, tierLists)
	// Run the transactional body directly; the stubs ignore the tx handle.
	svc.runTx = func(ctx context.Context, db *sql.DB, fn store.TxFn) error {
		return fn(ctx, nil)
	}
	return svc
}

func TestRecord(t *testing.T) {
	t.Parallel()

	buys := &stubBuyStore{}
	tierLists := &stubTierListStore{rows: map[int64]domain.TierList{
		3: {ID: 3, Tier: "gold", SurgeryID: 2, Price: "9000"},
	}}
	svc := newTestService(buys, tierLists)

	buy := &domain.Buy{CustomerID: 1, SurgeryID: 2, TierListID: 3, Price: "9000"}
	require.NoError(t, svc.Record(context.Background(), buy))

	assert.Equal(t, int64(1), buy.ID)
	require.Len(t, buys.created, 1)
}

func TestRecord_TierMismatch(t *testing.T) {
	t.Parallel()

	buys := &stubBuyStore{}
	tierLists := &stubTierListStore{rows: map[int64]domain.TierList{
		3: {ID: 3, Tier: "gold", SurgeryID: 7, Price: "9000"},
	}}
	svc := newTestService(buys, tierLists)

	buy := &domain.Buy{CustomerID: 1, SurgeryID: 2, TierListID: 3, Price: "9000"}
	err := svc.Record(context.Background(), buy)

	assert.ErrorIs(t, err, ErrTierMismatch)
	assert.Empty(t, buys.created)
}

func TestRecord_UnknownTierList(t *testing.T) {
	t.Parallel()

	buys := &stubBuyStore{}
	tierLists := &stubTierListStore{rows: map[int64]domain.TierList{}}
	svc := newTestService(buys, tierLists)

	buy := &domain.Buy{CustomerID: 1, SurgeryID: 2, TierListID: 3, Price: "9000"}
	err := svc.Record(context.Background(), buy)

	assert.ErrorIs(t, err, store.ErrTierListNotFound)
	assert.Empty(t, buys.created)
}

func TestRecord_InvalidBuy(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubBuyStore{}, &stubTierListStore{})

	err := svc.Record(context.Background(), &domain.Buy{SurgeryID: 2, TierListID: 3})
	assert.ErrorIs(t, err, domain.ErrMissingCustomerRef)
}
