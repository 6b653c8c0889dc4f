package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// ProbeStatusProvider exposes the last scheduled backend probe result.
type ProbeStatusProvider interface {
	Status() models.ProbeStatus
}

// HealthResponse reports the gateway liveness and the last backend probe.
// swagger:model HealthResponse
type HealthResponse struct {
	// Gateway status, always ok while serving
	Status string `json:"status"`

	// Application name
	Service string `json:"service"`

	// Application version
	Version string `json:"version"`

	// Result of the last scheduled backend probe
	Backend models.ProbeStatus `json:"backend"`
}

// NewHealthHandler returns the gateway liveness handler.
// @Summary Health
// @Description Returns gateway liveness and the most recent backend probe result.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Health status"
// @Router /health [get]
func NewHealthHandler(prober ProbeStatusProvider, service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:  "ok",
			Service: service,
			Version: version,
			Backend: prober.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
