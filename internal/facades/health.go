package facades

import (
	"context"
	"encoding/json"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// HealthFacade reads the backend liveness endpoint.
type HealthFacade struct {
	client HTTPClient
}

// NewHealthFacade creates a new facade over the backend transport.
func NewHealthFacade(client HTTPClient) *HealthFacade {
	return &HealthFacade{client: client}
}

// Check fetches the backend liveness payload.
func (f *HealthFacade) Check(ctx context.Context) (*models.BackendHealth, error) {
	raw, err := f.client.Get(ctx, EndpointHealth, nil)
	if err != nil {
		logger.Log.Errorw("backend health check failed", "error", err)
		return nil, err
	}

	var health models.BackendHealth
	if err := json.Unmarshal(raw, &health); err != nil {
		logger.Log.Errorw("unexpected health response shape", "error", err)
		return nil, err
	}
	return &health, nil
}
