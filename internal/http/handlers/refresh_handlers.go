package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// RefreshNowHandler godoc
// @Summary Trigger an immediate record store refresh
// @Description Refreshes the record store and invalidates cached views. Filter state is untouched.
// @Tags refresh
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResult
// @Failure 500 {string} string "Refresh failed"
// @Router /refresh [post]
func RefreshNowHandler(w http.ResponseWriter, r *http.Request) {
	if err := poller.RefreshNow(); err != nil {
		log.Error().Err(err).Msg("manual refresh failed")
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResult{Message: "refreshed", Enabled: poller.Enabled()})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
