package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// ToastProvider defines the notification-adapter surface the toast routes consume.
type ToastProvider interface {
	Notifications() []models.Toast
	Remove(id string)
	ClearAll()
}

// NotificationsResponse lists the active toasts, newest first.
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	// Active toasts
	Notifications []models.Toast `json:"notifications"`
}

// NewNotificationsHandler returns an HTTP handler listing active toasts.
// @Summary List notifications
// @Description Returns the active toast list, newest first, at most five entries.
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationsResponse "Active toasts"
// @Router /notifications [get]
func NewNotificationsHandler(svc ToastProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := NotificationsResponse{Notifications: svc.Notifications()}
		if resp.Notifications == nil {
			resp.Notifications = []models.Toast{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// NewDismissNotificationHandler returns an HTTP handler dismissing one toast.
// Dismissing an unknown id is a no-op and still succeeds.
// @Summary Dismiss notification
// @Description Removes a toast by id and cancels its auto-close timer. Unknown ids are ignored.
// @Tags notifications
// @Param id path string true "Toast ID"
// @Success 204 "Dismissed"
// @Router /notifications/{id} [delete]
func NewDismissNotificationHandler(svc ToastProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Remove(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewClearNotificationsHandler returns an HTTP handler dismissing every toast.
// @Summary Clear notifications
// @Description Removes all active toasts.
// @Tags notifications
// @Success 204 "Cleared"
// @Router /notifications [delete]
func NewClearNotificationsHandler(svc ToastProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearAll()
		w.WriteHeader(http.StatusNoContent)
	}
}
