package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// SessionProvider defines the session-adapter surface the settings screen consumes.
type SessionProvider interface {
	User() models.User
	Loading() bool
	LastError() string
	UpdateNotificationType(ctx context.Context, notificationType string) models.UpdateResult
}

// ChannelLister enumerates the selectable notification channels.
type ChannelLister interface {
	AvailableNotificationTypes() []models.NotificationChannel
}

// SettingsScreenResponse is the view model for the settings screen.
// swagger:model SettingsScreenResponse
type SettingsScreenResponse struct {
	// Current session user
	User models.User `json:"user"`

	// Channels offered by the notification selector
	NotificationTypes []models.NotificationChannel `json:"notificationTypes"`

	// Whether a settings update is in flight
	Loading bool `json:"loading"`

	// Error string from the last failed update, empty otherwise
	Error string `json:"error,omitempty"`
}

// UpdateNotificationTypeRequest selects a new notification channel.
// swagger:model UpdateNotificationTypeRequest
type UpdateNotificationTypeRequest struct {
	// Channel to switch to, email or sms
	// example: sms
	NotificationType string `json:"notificationType"`
}

// UpdateNotificationTypeResponse confirms an applied channel change.
// swagger:model UpdateNotificationTypeResponse
type UpdateNotificationTypeResponse struct {
	// Success message
	Message string `json:"message"`

	// Session user after the update
	User models.User `json:"user"`
}

// NewSettingsScreenHandler returns an HTTP handler serving the settings screen.
// @Summary Settings screen
// @Description Returns the session user and the selectable notification channels.
// @Tags screens
// @Produce json
// @Success 200 {object} handlers.SettingsScreenResponse "Settings screen view model"
// @Router /settings [get]
func NewSettingsScreenHandler(session SessionProvider, channels ChannelLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := SettingsScreenResponse{
			User:              session.User(),
			NotificationTypes: channels.AvailableNotificationTypes(),
			Loading:           session.Loading(),
			Error:             session.LastError(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// NewUpdateNotificationTypeHandler returns an HTTP handler that changes the
// user's notification channel.
// @Summary Update notification channel
// @Description Validates the channel locally and pushes it to the backend. Invalid channels never reach the network.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.UpdateNotificationTypeRequest true "Channel selection"
// @Success 200 {object} handlers.UpdateNotificationTypeResponse "Channel updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid channel or backend rejection"
// @Router /settings/notifications [post]
func NewUpdateNotificationTypeHandler(session SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateNotificationTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		result := session.UpdateNotificationType(r.Context(), req.NotificationType)
		if !result.Success {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: result.Error})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(UpdateNotificationTypeResponse{
			Message: "Configuración de notificaciones actualizada",
			User:    session.User(),
		})
	}
}
