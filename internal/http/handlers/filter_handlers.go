package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
)

// GetFilterStateHandler godoc
// @Summary Get the current filter state of a dashboard
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {object} filter.State
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/filters [get]
func GetFilterStateHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	st, ok := sessions.snapshot(dashboard)
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ToggleFilterHandler godoc
// @Summary Toggle one id inside a filter dimension
// @Description Toggling the "all" sentinel clears the dimension back to unrestricted
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Param toggle body ToggleRequest true "dimension and id"
// @Success 200 {object} filter.State
// @Failure 400 {string} string "Invalid dimension or id"
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/filters/toggle [post]
func ToggleFilterHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")

	var req ToggleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := sessions.mutate(dashboard, func(st *filter.State) error {
		return st.Toggle(req.Dimension, req.ID)
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	invalidateSnapshots(r, dashboard)
	st, _ := sessions.snapshot(dashboard)
	writeJSON(w, http.StatusOK, st)
}

// SelectAllFilterHandler godoc
// @Summary Clear a filter dimension back to unrestricted
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Param dimension body SelectAllRequest true "dimension to clear"
// @Success 200 {object} filter.State
// @Failure 400 {string} string "Invalid dimension"
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/filters/select-all [post]
func SelectAllFilterHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")

	var req SelectAllRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := sessions.mutate(dashboard, func(st *filter.State) error {
		return st.SelectAll(req.Dimension)
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	invalidateSnapshots(r, dashboard)
	st, _ := sessions.snapshot(dashboard)
	writeJSON(w, http.StatusOK, st)
}

// UpdateSettingsHandler godoc
// @Summary Update dashboard settings
// @Description Partial update; fields absent from the body keep their value. A rejected update leaves the state untouched.
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Param settings body SettingsRequest true "settings to change"
// @Success 200 {object} filter.State
// @Failure 400 {object} []FieldValidationError
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/settings [put]
func UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")

	var req SettingsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSettings(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	err := sessions.mutate(dashboard, func(st *filter.State) error {
		applySettings(&st.Settings, req)
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.AutoRefresh != nil && poller != nil {
		poller.SetEnabled(*req.AutoRefresh)
	}

	invalidateSnapshots(r, dashboard)
	st, _ := sessions.snapshot(dashboard)
	writeJSON(w, http.StatusOK, st)
}

// ResetFiltersHandler godoc
// @Summary Reset a dashboard to its default filter state
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {object} filter.State
// @Failure 404 {string} string "Unknown dashboard"
// @Router /dashboards/{dashboard}/filters/reset [post]
func ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	if !sessions.reset(dashboard) {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	invalidateSnapshots(r, dashboard)
	st, _ := sessions.snapshot(dashboard)
	writeJSON(w, http.StatusOK, st)
}

func applySettings(s *filter.Settings, req SettingsRequest) {
	if req.Period != nil {
		s.Period = *req.Period
	}
	if req.TimeRange != nil {
		s.TimeRange = *req.TimeRange
	}
	if req.ForecastHorizon != nil {
		s.ForecastHorizon = *req.ForecastHorizon
	}
	if req.ConfidenceInterval != nil {
		s.ConfidenceInterval = *req.ConfidenceInterval
	}
	if req.DeliveryThreshold != nil {
		s.DeliveryThreshold = *req.DeliveryThreshold
	}
	if req.AutoRefresh != nil {
		s.AutoRefresh = *req.AutoRefresh
	}
	if req.RefreshSeconds != nil {
		s.RefreshSeconds = *req.RefreshSeconds
	}
	if req.CostAnalysis != nil {
		s.CostAnalysis = *req.CostAnalysis
	}
	if req.Benchmarking != nil {
		s.Benchmarking = *req.Benchmarking
	}
	if req.SeasonalComparison != nil {
		s.SeasonalComparison = *req.SeasonalComparison
	}
}

func invalidateSnapshots(r *http.Request, dashboard string) {
	snapshots.Invalidate(r.Context(), dashboard)
}
