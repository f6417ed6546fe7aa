package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nugomed/nugomed-api/internal/store"
)

// idParam extracts the named URL parameter as a positive int64 ID.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}

// pageFromQuery reads skip/limit pagination parameters, falling back to the
// defaults when a value is absent or malformed. Negative values are clamped.
func pageFromQuery(r *http.Request) store.Page {
	page := store.DefaultPage()
	q := r.URL.Query()
	if raw := q.Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page.Skip = v
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page.Limit = v
		}
	}
	return page
}
