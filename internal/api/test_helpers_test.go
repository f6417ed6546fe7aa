package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/service/auth"
	"github.com/nugomed/nugomed-api/internal/store"
)

// In-memory stores backing handler tests. Each keeps rows in insertion
// order and assigns ascending IDs the way bigserial would.

type memSurgeryStore struct {
	rows   []domain.Surgery
	nextID int64
	err    error
}

func newMemSurgeryStore() *memSurgeryStore { return &memSurgeryStore{nextID: 1} }

func (s *memSurgeryStore) List(ctx context.Context, page store.Page) ([]domain.Surgery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return paginate(s.rows, page), nil
}

func (s *memSurgeryStore) GetByID(ctx context.Context, id int64) (*domain.Surgery, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, store.ErrSurgeryNotFound
}

func (s *memSurgeryStore) Create(ctx context.Context, surgery *domain.Surgery) error {
	if s.err != nil {
		return s.err
	}
	surgery.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *surgery)
	return nil
}

func (s *memSurgeryStore) Update(ctx context.Context, surgery *domain.Surgery) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == surgery.ID {
			s.rows[i] = *surgery
			return nil
		}
	}
	return store.ErrSurgeryNotFound
}

func (s *memSurgeryStore) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrSurgeryNotFound
}

func (s *memSurgeryStore) WithTx(tx *sql.Tx) store.SurgeryStore { return s }

type memTierListStore struct {
	rows   []domain.TierList
	nextID int64
}

func newMemTierListStore() *memTierListStore { return &memTierListStore{nextID: 1} }

func (s *memTierListStore) List(ctx context.Context, page store.Page) ([]domain.TierList, error) {
	return paginate(s.rows, page), nil
}

func (s *memTierListStore) GetByID(ctx context.Context, id int64) (*domain.TierList, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, store.ErrTierListNotFound
}

func (s *memTierListStore) ListBySurgery(ctx context.Context, surgeryID int64) ([]domain.TierList, error) {
	var out []domain.TierList
	for i := range s.rows {
		if s.rows[i].SurgeryID == surgeryID {
			out = append(out, s.rows[i])
		}
	}
	return out, nil
}

func (s *memTierListStore) Create(ctx context.Context, tierList *domain.TierList) error {
	tierList.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *tierList)
	return nil
}

func (s *memTierListStore) Update(ctx context.Context, tierList *domain.TierList) error {
	for i := range s.rows {
		if s.rows[i].ID == tierList.ID {
			s.rows[i] = *tierList
			return nil
		}
	}
	return store.ErrTierListNotFound
}

func (s *memTierListStore) Delete(ctx context.Context, id int64) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrTierListNotFound
}

func (s *memTierListStore) WithTx(tx *sql.Tx) store.TierListStore { return s }

type memCustomerStore struct {
	rows   []domain.Customer
	nextID int64
	err    error
}

func newMemCustomerStore() *memCustomerStore { return &memCustomerStore{nextID: 1} }

func (s *memCustomerStore) List(ctx context.Context, page store.Page) ([]domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return paginate(s.rows, page), nil
}

func (s *memCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, store.ErrCustomerNotFound
}

func (s *memCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	if s.err != nil {
		return s.err
	}
	customer.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *customer)
	return nil
}

func (s *memCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == customer.ID {
			s.rows[i] = *customer
			return nil
		}
	}
	return store.ErrCustomerNotFound
}

func (s *memCustomerStore) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrCustomerNotFound
}

func (s *memCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore { return s }

type memBuyStore struct {
	rows   []domain.Buy
	nextID int64
}

func newMemBuyStore() *memBuyStore { return &memBuyStore{nextID: 1} }

func (s *memBuyStore) List(ctx context.Context, page store.Page) ([]domain.Buy, error) {
	return paginate(s.rows, page), nil
}

func (s *memBuyStore) GetByID(ctx context.Context, id int64) (*domain.Buy, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, store.ErrBuyNotFound
}

func (s *memBuyStore) Create(ctx context.Context, buy *domain.Buy) error {
	buy.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *buy)
	return nil
}

func (s *memBuyStore) Delete(ctx context.Context, id int64) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrBuyNotFound
}

func (s *memBuyStore) WithTx(tx *sql.Tx) store.BuyStore { return s }

type memEmailStore struct {
	rows   []domain.Email
	nextID int64
	err    error
}

func newMemEmailStore() *memEmailStore { return &memEmailStore{nextID: 1} }

func (s *memEmailStore) List(ctx context.Context, page store.Page) ([]domain.Email, error) {
	if s.err != nil {
		return nil, s.err
	}
	return paginate(s.rows, page), nil
}

func (s *memEmailStore) GetByID(ctx context.Context, id int64) (*domain.Email, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, store.ErrEmailNotFound
}

func (s *memEmailStore) Create(ctx context.Context, email *domain.Email) error {
	if s.err != nil {
		return s.err
	}
	email.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *email)
	return nil
}

func (s *memEmailStore) WithTx(tx *sql.Tx) store.EmailStore { return s }

type memUserStore struct {
	users map[string]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*domain.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.Username]; ok {
		return store.ErrUsernameExists
	}
	// Mirror the real store: hash before persisting, drop the plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.HashedPassword = string(hash)
	user.Password = ""
	s.users[user.Username] = user
	return nil
}

func (s *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

func paginate[T any](rows []T, page store.Page) []T {
	if page.Skip >= len(rows) {
		return nil
	}
	end := page.Skip + page.Limit
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-page.Skip)
	copy(out, rows[page.Skip:end])
	return out
}

const testSecret = "test-jwt-secret-thats-at-least-32-chars"

func newTestAuthenticator(userStore store.UserStore) *auth.Authenticator {
	tokenService := auth.NewTokenServiceWithTime(testSecret, 30*time.Minute, time.Now)
	return auth.NewAuthenticator(userStore, auth.NewBcryptHasher(bcrypt.MinCost), tokenService)
}

// withRouteParams attaches chi URL parameters to the request context so
// handlers can be exercised without a full router.
func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
