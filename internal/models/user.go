package models

import "github.com/shopspring/decimal"

// Notification channels a user can pick for subscription notices.
const (
	NotificationEmail = "email"
	NotificationSMS   = "sms"
)

// User is the single implicit session record, seeded at startup.
// notificationType is the only field this service can change.
// swagger:model User
type User struct {
	// User identifier
	// example: user-123
	ID string `json:"id"`

	// Simulated balance in COP
	Balance decimal.Decimal `json:"balance"`

	// Preferred notification channel, email or sms
	NotificationType string `json:"notificationType"`
}

// NotificationSettingsRequest is the body sent to the backend settings endpoint.
type NotificationSettingsRequest struct {
	UserID           string `json:"userId"`
	NotificationType string `json:"notificationType" validate:"required,oneof=email sms"`
}

// NotificationChannel describes a selectable channel for the settings screen.
// swagger:model NotificationChannel
type NotificationChannel struct {
	// Channel value, email or sms
	Value string `json:"value"`

	// Display label
	Label string `json:"label"`
}

// UpdateResult reports the outcome of a notification-channel update.
// Failures are carried as data, never raised past the session service.
// swagger:model UpdateResult
type UpdateResult struct {
	// Whether the update was applied
	Success bool `json:"success"`

	// Error description, empty on success
	Error string `json:"error,omitempty"`
}
