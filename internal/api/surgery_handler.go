package api

import (
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// SurgeryHandler serves the surgery catalogue endpoints.
type SurgeryHandler struct {
	surgeries store.SurgeryStore
}

// NewSurgeryHandler creates a new SurgeryHandler.
func NewSurgeryHandler(surgeries store.SurgeryStore) *SurgeryHandler {
	return &SurgeryHandler{surgeries: surgeries}
}

// List handles GET /surgeries.
func (h *SurgeryHandler) List(w http.ResponseWriter, r *http.Request) {
	surgeries, err := h.surgeries.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(surgeries), surgeries))
}

// Get handles GET /surgeries/{id}.
func (h *SurgeryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid surgery ID")
		return
	}

	surgery, err := h.surgeries.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, surgery)
}

// Create handles POST /surgeries.
func (h *SurgeryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SurgeryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	surgery := &domain.Surgery{
		Surgery:            req.Surgery,
		SurgeryDescription: req.SurgeryDescription,
		PartnerID:          req.PartnerID,
	}
	if err := h.surgeries.Create(r.Context(), surgery); err != nil {
		respondStoreError(w, r, err, "Partner not found")
		return
	}

	log.Info("surgery created", "surgery_id", surgery.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, surgery)
}

// Update handles PUT /surgeries/{id}, replacing all fields.
func (h *SurgeryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid surgery ID")
		return
	}

	var req SurgeryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	surgery := &domain.Surgery{
		ID:                 id,
		Surgery:            req.Surgery,
		SurgeryDescription: req.SurgeryDescription,
		PartnerID:          req.PartnerID,
	}
	if err := h.surgeries.Update(r.Context(), surgery); err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, surgery)
}

// Patch handles PATCH /surgeries/{id}. Only the fields present in the
// payload change; unknown fields are rejected.
func (h *SurgeryHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid surgery ID")
		return
	}

	var req SurgeryPatchRequest
	if err := shared.DecodeJSONStrict(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	surgery, err := h.surgeries.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}

	if req.Surgery != nil {
		surgery.Surgery = *req.Surgery
	}
	if req.SurgeryDescription != nil {
		surgery.SurgeryDescription = *req.SurgeryDescription
	}
	if err := surgery.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.surgeries.Update(r.Context(), surgery); err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, surgery)
}

// Delete handles DELETE /surgeries/{id}.
func (h *SurgeryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid surgery ID")
		return
	}

	if err := h.surgeries.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}

	log.Info("surgery deleted", "surgery_id", id)
	w.WriteHeader(http.StatusNoContent)
}
