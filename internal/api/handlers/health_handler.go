package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/store"
)

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	pinger store.Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger store.Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Health check failed")
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
