package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/service/purchase"
	"github.com/nugomed/nugomed-api/internal/store"
)

// BuyRecorder persists a new purchase after cross-checking its references.
// Implemented by the purchase service.
type BuyRecorder interface {
	Record(ctx context.Context, buy *domain.Buy) error
}

// BuyHandler serves the purchase record endpoints, including per-document
// downloads.
type BuyHandler struct {
	buys      store.BuyStore
	purchases BuyRecorder
}

// NewBuyHandler creates a new BuyHandler.
func NewBuyHandler(buys store.BuyStore, purchases BuyRecorder) *BuyHandler {
	return &BuyHandler{
		buys:      buys,
		purchases: purchases,
	}
}

// List handles GET /buys.
func (h *BuyHandler) List(w http.ResponseWriter, r *http.Request) {
	buys, err := h.buys.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Buy not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(buys), buys))
}

// Get handles GET /buys/{id}.
func (h *BuyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid buy ID")
		return
	}

	buy, err := h.buys.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Buy not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, buy)
}

// Document handles GET /buys/{id}/documents/{document}, streaming one
// uploaded document as raw bytes. Unknown document names and documents
// never uploaded both answer 404.
func (h *BuyHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid buy ID")
		return
	}

	buy, err := h.buys.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Buy not found")
		return
	}

	name := chi.URLParam(r, "document")
	blob := buy.Document(name)
	if len(blob) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Document not found")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%d", name, buy.ID)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob); err != nil {
		logger.FromContext(r.Context()).Error("failed to stream document",
			"buy_id", buy.ID, "document", name, "error", err)
	}
}

// Create handles POST /buys.
func (h *BuyHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	buy := &domain.Buy{
		CustomerID:   req.CustomerID,
		SurgeryID:    req.SurgeryID,
		TierListID:   req.TierListID,
		Price:        req.Price,
		SchengenArea: req.SchengenArea,

		ValidPhoto:             req.ValidPhoto,
		IDScan:                 req.IDScan,
		MedicalDossier:         req.MedicalDossier,
		TripClearanceDoc:       req.TripClearanceDoc,
		OralCareImplantPlan:    req.OralCareImplantPlan,
		HairCareImplantPlan:    req.HairCareImplantPlan,
		VisaDocuments:          req.VisaDocuments,
		VisaApplicationForm:    req.VisaApplicationForm,
		IdenticalPhotos:        req.IdenticalPhotos,
		PassportCopy:           req.PassportCopy,
		MedicalTravelInsurance: req.MedicalTravelInsurance,
		ProofOfFinancialMeans:  req.ProofOfFinancialMeans,
		GuaranteeLetter:        req.GuaranteeLetter,
	}
	if err := h.purchases.Record(r.Context(), buy); err != nil {
		switch {
		case errors.Is(err, purchase.ErrTierMismatch):
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Tier list does not belong to the selected surgery")
		case store.IsNotFoundError(err):
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Referenced resource not found")
		default:
			respondStoreError(w, r, err, "Referenced resource not found")
		}
		return
	}

	log.Info("buy recorded",
		"buy_id", buy.ID,
		"customer_id", buy.CustomerID,
		"surgery_id", buy.SurgeryID)
	shared.RespondWithJSON(w, r, http.StatusCreated, buy)
}

// Delete handles DELETE /buys/{id}.
func (h *BuyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid buy ID")
		return
	}

	if err := h.buys.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Buy not found")
		return
	}

	log.Info("buy deleted", "buy_id", id)
	w.WriteHeader(http.StatusNoContent)
}
