package api

import (
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// TierListHandler serves the tier list (package pricing) endpoints.
type TierListHandler struct {
	tierLists store.TierListStore
}

// NewTierListHandler creates a new TierListHandler.
func NewTierListHandler(tierLists store.TierListStore) *TierListHandler {
	return &TierListHandler{tierLists: tierLists}
}

// List handles GET /tier-lists.
func (h *TierListHandler) List(w http.ResponseWriter, r *http.Request) {
	tierLists, err := h.tierLists.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Tier list not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(tierLists), tierLists))
}

// Get handles GET /tier-lists/{id}.
func (h *TierListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid tier list ID")
		return
	}

	tierList, err := h.tierLists.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Tier list not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tierList)
}

// ListBySurgery handles GET /surgeries/{id}/tier-lists, the packages priced
// for one surgery.
func (h *TierListHandler) ListBySurgery(w http.ResponseWriter, r *http.Request) {
	surgeryID, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid surgery ID")
		return
	}

	tierLists, err := h.tierLists.ListBySurgery(r.Context(), surgeryID)
	if err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(tierLists), tierLists))
}

// Create handles POST /tier-lists.
func (h *TierListHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TierListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	tierList := tierListFromRequest(&req)
	if err := h.tierLists.Create(r.Context(), tierList); err != nil {
		respondStoreError(w, r, err, "Surgery not found")
		return
	}

	log.Info("tier list created", "tier_list_id", tierList.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, tierList)
}

// Update handles PUT /tier-lists/{id}, replacing all fields.
func (h *TierListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid tier list ID")
		return
	}

	var req TierListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	tierList := tierListFromRequest(&req)
	tierList.ID = id
	if err := h.tierLists.Update(r.Context(), tierList); err != nil {
		respondStoreError(w, r, err, "Tier list not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tierList)
}

// Delete handles DELETE /tier-lists/{id}.
func (h *TierListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid tier list ID")
		return
	}

	if err := h.tierLists.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Tier list not found")
		return
	}

	log.Info("tier list deleted", "tier_list_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func tierListFromRequest(req *TierListRequest) *domain.TierList {
	return &domain.TierList{
		Tier:                   req.Tier,
		SurgeryID:              req.SurgeryID,
		VisaSponsorship:        req.VisaSponsorship,
		FlightType:             req.FlightType,
		NumberFamilyMembers:    req.NumberFamilyMembers,
		HospitalAccommodations: req.HospitalAccommodations,
		Hotel:                  req.Hotel,
		DurationStay:           req.DurationStay,
		TourismPackage:         req.TourismPackage,
		PostSurgeryMonitoring:  req.PostSurgeryMonitoring,
		Price:                  req.Price,
	}
}
