package api

import (
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// PartnerHandler serves the partner directory endpoints.
type PartnerHandler struct {
	partners store.PartnerStore
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(partners store.PartnerStore) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

// List handles GET /partners.
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partners.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(partners), partners))
}

// Get handles GET /partners/{id}.
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	partner, err := h.partners.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, partner)
}

// Create handles POST /partners.
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PartnerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	partner := &domain.Partner{
		CompanyName: req.CompanyName,
		Website:     req.Website,
		HelpType:    req.HelpType,
		Logo:        req.Logo,
	}
	if err := h.partners.Create(r.Context(), partner); err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}

	log.Info("partner created", "partner_id", partner.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, partner)
}

// Update handles PUT /partners/{id}, replacing all fields.
func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	var req PartnerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	partner := &domain.Partner{
		ID:          id,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		HelpType:    req.HelpType,
		Logo:        req.Logo,
	}
	if err := h.partners.Update(r.Context(), partner); err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, partner)
}

// Delete handles DELETE /partners/{id}. Deleting a partner that still has
// surgeries referencing it fails with a bad-reference error.
func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	if err := h.partners.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}

	log.Info("partner deleted", "partner_id", id)
	w.WriteHeader(http.StatusNoContent)
}
