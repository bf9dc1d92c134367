package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
)

// SaveBookmarkHandler godoc
// @Summary Bookmark the current filter state of a dashboard
// @Description The bookmark holds a deep copy: later filter changes never leak into it
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Param bookmark body BookmarkRequest true "bookmark label"
// @Success 201 {object} BookmarkResponse
// @Failure 400 {string} string "Invalid label"
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/bookmarks [post]
func SaveBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	store, ok := bookmarks[dashboard]
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	var req BookmarkRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	st, _ := sessions.snapshot(dashboard)
	bm, err := store.Save(req.Label, st)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, BookmarkResponse{
		ID:        bm.ID,
		Label:     bm.Label,
		CreatedAt: bm.CreatedAt.Format(time.RFC3339),
	})
}

// ListBookmarksHandler godoc
// @Summary List the bookmarks of a dashboard
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {array} BookmarkResponse
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/bookmarks [get]
func ListBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	store, ok := bookmarks[dashboard]
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	list := store.List()
	resp := make([]BookmarkResponse, len(list))
	for i, bm := range list {
		resp[i] = BookmarkResponse{
			ID:        bm.ID,
			Label:     bm.Label,
			CreatedAt: bm.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ApplyBookmarkHandler godoc
// @Summary Restore a bookmarked filter state
// @Description Replaces the dashboard's live filter state with the bookmarked snapshot
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Param id path string true "bookmark id"
// @Success 200 {object} filter.State
// @Failure 404 {string} string "Unknown dashboard or bookmark"
// @Router /dashboards/{dashboard}/bookmarks/{id}/apply [post]
func ApplyBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	store, ok := bookmarks[dashboard]
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	saved, err := store.Load(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := sessions.mutate(dashboard, func(st *filter.State) error {
		st.Replace(saved)
		return nil
	}); err != nil {
		writeDomainError(w, err)
		return
	}

	invalidateSnapshots(r, dashboard)
	st, _ := sessions.snapshot(dashboard)
	writeJSON(w, http.StatusOK, st)
}
