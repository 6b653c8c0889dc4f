package models

import "time"

// BackendHealth is the liveness payload reported by the fund backend.
// swagger:model BackendHealth
type BackendHealth struct {
	// Backend status, healthy or unhealthy
	Status string `json:"status"`

	// Backend-reported check time
	Timestamp string `json:"timestamp,omitempty"`

	// Backend service name
	Service string `json:"service,omitempty"`

	// Backend version
	Version string `json:"version,omitempty"`
}

// ProbeStatus is the result of the most recent scheduled backend probe.
// swagger:model ProbeStatus
type ProbeStatus struct {
	// Whether the last probe succeeded
	Healthy bool `json:"healthy"`

	// Time of the last probe, zero before the first run
	CheckedAt time.Time `json:"checkedAt"`

	// Probe failure description, empty when healthy
	Error string `json:"error,omitempty"`

	// Last payload returned by the backend, nil on failure
	Backend *BackendHealth `json:"backend,omitempty"`
}
