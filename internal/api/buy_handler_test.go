package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/service/purchase"
)

// fakeRecorder stands in for the purchase service; it writes straight to
// the store or fails with the configured error.
type fakeRecorder struct {
	buys *memBuyStore
	err  error
}

func (r *fakeRecorder) Record(ctx context.Context, buy *domain.Buy) error {
	if err := buy.Validate(); err != nil {
		return err
	}
	if r.err != nil {
		return r.err
	}
	return r.buys.Create(ctx, buy)
}

func TestBuyCreate(t *testing.T) {
	t.Parallel()

	buys := newMemBuyStore()
	handler := NewBuyHandler(buys, &fakeRecorder{buys: buys})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/buys", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(handler.Create, req)
	}

	t.Run("creates with documents", func(t *testing.T) {
		// "cGFzc3BvcnQ=" is base64 for "passport".
		rec := post(`{
			"customer_id": 1,
			"surgery_id": 2,
			"tier_list_id": 3,
			"price": "12000",
			"schengen_area": true,
			"passport_copy": "cGFzc3BvcnQ="
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Buy
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, []byte("passport"), got.PassportCopy)
		assert.Nil(t, got.ValidPhoto)
	})

	t.Run("missing references", func(t *testing.T) {
		rec := post(`{"price": "12000"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBuyCreate_TierMismatch(t *testing.T) {
	t.Parallel()

	buys := newMemBuyStore()
	handler := NewBuyHandler(buys, &fakeRecorder{buys: buys, err: purchase.ErrTierMismatch})

	body := `{"customer_id": 1, "surgery_id": 2, "tier_list_id": 3, "price": "1000"}`
	req := httptest.NewRequest(http.MethodPost, "/buys", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(handler.Create, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, buys.rows)
}

func TestBuyDocument(t *testing.T) {
	t.Parallel()

	buys := newMemBuyStore()
	require.NoError(t, buys.Create(context.Background(), &domain.Buy{
		CustomerID:   1,
		SurgeryID:    1,
		TierListID:   1,
		Price:        "5000",
		PassportCopy: []byte("passport bytes"),
	}))
	handler := NewBuyHandler(buys, &fakeRecorder{buys: buys})

	get := func(id, doc string) *httptest.ResponseRecorder {
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet, "/buys/"+id+"/documents/"+doc, nil),
			map[string]string{"id": id, "document": doc})
		return doRequest(handler.Document, req)
	}

	t.Run("streams raw bytes", func(t *testing.T) {
		rec := get("1", "passport_copy")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, []byte("passport bytes"), rec.Body.Bytes())
	})

	t.Run("document never uploaded", func(t *testing.T) {
		rec := get("1", "medical_dossier")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown document name", func(t *testing.T) {
		rec := get("1", "tax_return")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown buy", func(t *testing.T) {
		rec := get("99", "passport_copy")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBuyDelete(t *testing.T) {
	t.Parallel()

	buys := newMemBuyStore()
	require.NoError(t, buys.Create(context.Background(), &domain.Buy{
		CustomerID: 1, SurgeryID: 1, TierListID: 1, Price: "5000",
	}))
	handler := NewBuyHandler(buys, &fakeRecorder{buys: buys})

	req := withRouteParams(
		httptest.NewRequest(http.MethodDelete, "/buys/1", nil),
		map[string]string{"id": "1"})
	rec := doRequest(handler.Delete, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = withRouteParams(
		httptest.NewRequest(http.MethodDelete, "/buys/1", nil),
		map[string]string{"id": "1"})
	rec = doRequest(handler.Delete, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
