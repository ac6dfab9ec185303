package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/learnsphere-dev/learnsphere/shared/api"
	"github.com/learnsphere-dev/learnsphere/shared/config"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
)

// HealthChecker reports whether the LearnSphere API can be reached.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	cfg    *config.Config
	health HealthChecker
}

func New(cfg *config.Config, health HealthChecker) *Handler {
	return &Handler{cfg: cfg, health: health}
}

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ready returns 503 while the API origin is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("api origin unreachable", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("api unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) GetPublicConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.PublicConfig{APIBaseURL: h.cfg.API.BaseURL})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
