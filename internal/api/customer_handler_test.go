package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugomed/nugomed-api/internal/domain"
)

func TestCustomerCreate(t *testing.T) {
	t.Parallel()

	customers := newMemCustomerStore()
	handler := NewCustomerHandler(customers)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(handler.Create, req)
	}

	t.Run("creates with passport only", func(t *testing.T) {
		rec := post(`{
			"full_name": "Jane Doe",
			"contact_email": "jane@example.com",
			"birthdate": "1985-04-12",
			"passport_number": "X1234567",
			"country_of_origin": "Tunisia",
			"denied_visa": false
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "X1234567", got.PassportNumber)
		assert.Empty(t, got.NationalIDNumber)
		assert.Equal(t, time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC), got.Birthdate)
	})

	t.Run("bad birthdate format", func(t *testing.T) {
		rec := post(`{
			"full_name": "Jane Doe",
			"contact_email": "jane@example.com",
			"birthdate": "12/04/1985",
			"country_of_origin": "Tunisia"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad contact email", func(t *testing.T) {
		rec := post(`{
			"full_name": "Jane Doe",
			"contact_email": "not-an-email",
			"birthdate": "1985-04-12",
			"country_of_origin": "Tunisia"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerUpdate(t *testing.T) {
	t.Parallel()

	customers := newMemCustomerStore()
	customers.rows = append(customers.rows, domain.Customer{
		ID:              1,
		FullName:        "Jane Doe",
		ContactEmail:    "jane@example.com",
		Birthdate:       time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC),
		CountryOfOrigin: "Tunisia",
	})
	customers.nextID = 2
	handler := NewCustomerHandler(customers)

	body := `{
		"full_name": "Jane Smith",
		"contact_email": "jane@example.com",
		"birthdate": "1985-04-12",
		"country_of_origin": "Tunisia",
		"denied_visa": true
	}`

	req := withRouteParams(
		httptest.NewRequest(http.MethodPut, "/customers/1", strings.NewReader(body)),
		map[string]string{"id": "1"})
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(handler.Update, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Jane Smith", got.FullName)
	assert.True(t, got.DeniedVisa)
}

func TestCustomerGetAndDelete(t *testing.T) {
	t.Parallel()

	customers := newMemCustomerStore()
	customers.rows = append(customers.rows, domain.Customer{
		ID:              1,
		FullName:        "Jane Doe",
		ContactEmail:    "jane@example.com",
		CountryOfOrigin: "Tunisia",
	})
	customers.nextID = 2
	handler := NewCustomerHandler(customers)

	get := func(id string) *httptest.ResponseRecorder {
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet, "/customers/"+id, nil),
			map[string]string{"id": id})
		return doRequest(handler.Get, req)
	}

	rec := get("1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get("42")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := withRouteParams(
		httptest.NewRequest(http.MethodDelete, "/customers/1", nil),
		map[string]string{"id": "1"})
	rec = doRequest(handler.Delete, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = get("1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
