package api

import (
	"errors"
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/store"
)

// respondStoreError translates a store-layer error into the HTTP response
// taxonomy: not found, uniqueness conflict, bad reference, or a generic
// server error. notFoundDetail names the missing entity toward the client.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	switch {
	case store.IsNotFoundError(err):
		shared.RespondWithError(w, r, http.StatusNotFound, notFoundDetail)
	case store.IsDuplicateError(err):
		shared.RespondWithError(w, r, http.StatusConflict, "Resource already exists")
	case errors.Is(err, store.ErrInvalidEntity):
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reference to a related resource")
	default:
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Internal server error", err)
	}
}
