package http

import (
	"log/slog"
	"net/http"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

type healthHandler struct {
	logger *slog.Logger
	health db.HealthChecker
}

func newHealthHandler(logger *slog.Logger, health db.HealthChecker) *healthHandler {
	return &healthHandler{
		logger: logger,
		health: health,
	}
}

func (h *healthHandler) healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := h.health.IsHealthy(r.Context()); err != nil {
		respondError(h.logger, w, r, apperr.StorageUnavailableErr.WrapParent(err))
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}
