package health

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// BackendChecker reads the backend liveness endpoint.
type BackendChecker interface {
	Check(ctx context.Context) (*models.BackendHealth, error)
}

// Prober probes the fund backend on a cron schedule and keeps the last
// result for the gateway's own health endpoint.
type Prober struct {
	checker BackendChecker
	cron    *cron.Cron
	spec    string

	mu     sync.RWMutex
	status models.ProbeStatus
}

// NewProber creates a prober with the given cron spec, e.g. "@every 30s".
func NewProber(checker BackendChecker, spec string) *Prober {
	return &Prober{
		checker: checker,
		cron:    cron.New(),
		spec:    spec,
	}
}

// Start registers the probe job, runs one probe immediately, and starts
// the scheduler.
func (p *Prober) Start() error {
	if _, err := p.cron.AddFunc(p.spec, p.probe); err != nil {
		return err
	}
	p.probe()
	p.cron.Start()
	logger.Log.Infof("backend health prober started with schedule %q", p.spec)
	return nil
}

// Stop stops the scheduler. A probe already running is left to finish.
func (p *Prober) Stop() {
	p.cron.Stop()
	logger.Log.Info("backend health prober stopped")
}

// Status returns the result of the most recent probe.
func (p *Prober) Status() models.ProbeStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *Prober) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := models.ProbeStatus{CheckedAt: time.Now()}

	backend, err := p.checker.Check(ctx)
	if err != nil {
		status.Error = err.Error()
		logger.Log.Warnw("backend probe failed", "error", err)
	} else {
		status.Healthy = backend.Status == "healthy"
		status.Backend = backend
		if !status.Healthy {
			logger.Log.Warnw("backend reports unhealthy", "status", backend.Status)
		}
	}

	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
}
