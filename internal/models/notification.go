package models

import "time"

// Toast types rendered by the notification area.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// DefaultToastDuration is the auto-close delay applied when none is given.
const DefaultToastDuration = 5000 * time.Millisecond

// MaxToasts caps the concurrent toast list; the oldest entry is dropped beyond it.
const MaxToasts = 5

// Toast is an ephemeral client-side notification. It is never persisted
// and never synced with the backend.
// swagger:model Toast
type Toast struct {
	// Generated unique identifier
	ID string `json:"id"`

	// Toast type: success, error, warning or info
	Type string `json:"type"`

	// Short title
	Title string `json:"title"`

	// Notification body
	Message string `json:"message"`

	// Whether the toast dismisses itself after Duration
	AutoClose bool `json:"autoClose"`

	// Auto-close delay in milliseconds
	Duration int64 `json:"duration"`

	// Creation time
	Timestamp time.Time `json:"timestamp"`
}
