package handler

import (
	"net/http"

	"github.com/albapepper/ballknowledge-data/internal/api/respond"
)

// Root godoc
// @Summary Service metadata
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"name":    "Ball Knowledge Data API",
		"sports":  []string{"NBA", "NFL"},
		"docs":    "/docs/",
		"health":  "/health",
		"version": "1.0.0",
	})
}

// HealthCheck godoc
// @Summary Basic health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.timestamp(),
	})
}

// HealthCheckCache godoc
// @Summary Response cache statistics
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"cache":       h.Cache.Stats(),
		"nba_careers": h.NBACareers.Len(),
		"nfl_careers": h.NFLCareers.Len(),
		"timestamp":   h.timestamp(),
	})
}

// NFLHealth godoc
// @Summary Football health check
// @Description Reports whether the football provider answered at startup.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /nfl/health [get]
func (h *Handler) NFLHealth(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"status":             "ok",
		"nfl_data_available": h.NFLDataAvailable,
		"timestamp":          h.timestamp(),
	})
}
