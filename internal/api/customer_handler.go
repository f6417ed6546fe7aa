package api

import (
	"net/http"
	"time"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// birthdateLayout is the ISO date form used for customer birthdates.
const birthdateLayout = "2006-01-02"

// CustomerHandler serves the customer record endpoints. Customer data is
// personally identifying, so every route here sits behind authentication.
type CustomerHandler struct {
	customers store.CustomerStore
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers store.CustomerStore) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Customer not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(customers), customers))
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Customer not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	customer, ok := h.decodeCustomer(w, r)
	if !ok {
		return
	}

	if err := h.customers.Create(r.Context(), customer); err != nil {
		respondStoreError(w, r, err, "Customer not found")
		return
	}

	log.Info("customer created", "customer_id", customer.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, customer)
}

// Update handles PUT /customers/{id}, replacing all fields.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, ok := h.decodeCustomer(w, r)
	if !ok {
		return
	}

	customer.ID = id
	if err := h.customers.Update(r.Context(), customer); err != nil {
		respondStoreError(w, r, err, "Customer not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// Delete handles DELETE /customers/{id}. A customer with recorded buys
// cannot be removed until the buys are.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Customer not found")
		return
	}

	log.Info("customer deleted", "customer_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeCustomer decodes and validates a customer payload, writing the
// error response itself when the payload is bad.
func (h *CustomerHandler) decodeCustomer(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Customer, bool) {
	var req CustomerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return nil, false
	}

	// The datetime validator already guaranteed the layout parses.
	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid birthdate")
		return nil, false
	}

	return &domain.Customer{
		FullName:         req.FullName,
		ContactEmail:     req.ContactEmail,
		Birthdate:        birthdate,
		NationalIDNumber: req.NationalIDNumber,
		PassportNumber:   req.PassportNumber,
		CountryOfOrigin:  req.CountryOfOrigin,
		DeniedVisa:       req.DeniedVisa,
	}, true
}
