package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/cache"
)

// GetDashboardHandler godoc
// @Summary Get a dashboard view model under the current filter state
// @Description Aggregates the record store into the named dashboard's view model
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "operations | executive | supplier | forecast"
// @Param sort query string false "sort key for the operations product table (stock, value)"
// @Param order query string false "asc or desc"
// @Success 200 {object} map[string]any
// @Failure 404 {string} string "Unknown dashboard"
// @Failure 500 {string} string "Internal error"
// @Router /dashboards/{dashboard} [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	st, ok := sessions.snapshot(dashboard)
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	sortReq := aggregate.Sort{
		Key:        r.URL.Query().Get("sort"),
		Descending: r.URL.Query().Get("order") == "desc",
	}

	// Sorted views share the cache key of the unsorted one only if the
	// sort is empty; otherwise skip the cache.
	cacheable := sortReq.Key == ""
	key := cache.Key(dashboard, st)
	if cacheable {
		if payload, ok := snapshots.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	view, err := buildView(dashboard, st, sortReq)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if cacheable {
		snapshots.Set(r.Context(), key, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}
