package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": dto.StatusOK})
}

// Readiness handles GET /health/ready: 200 when every dependency passes,
// 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if ready {
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	logger := logging.FromContext(r.Context())
	for name, check := range resp.Checks {
		if check.Error != "" {
			logger.WarnContext(r.Context(), "dependency not ready",
				slog.String("check", name),
				slog.String("error", check.Error),
			)
		}
	}
	writeJSON(w, r, http.StatusServiceUnavailable, resp)
}
