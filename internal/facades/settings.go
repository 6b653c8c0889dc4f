package facades

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// ErrInvalidNotificationType is returned for channels outside {email, sms}
// before any network call is made.
var ErrInvalidNotificationType = errors.New("invalid notification type: must be email or sms")

// SettingsFacade updates the user's notification channel on the backend.
type SettingsFacade struct {
	client   HTTPClient
	validate *validator.Validate
}

// NewSettingsFacade creates a new facade over the backend transport.
func NewSettingsFacade(client HTTPClient) *SettingsFacade {
	return &SettingsFacade{
		client:   client,
		validate: validator.New(),
	}
}

// UpdateNotificationSettings sets the user's notification channel. The
// channel is validated locally and invalid input never reaches the
// transport layer.
func (f *SettingsFacade) UpdateNotificationSettings(ctx context.Context, userID, notificationType string) (*models.SubscriptionResult, error) {
	body := models.NotificationSettingsRequest{
		UserID:           userID,
		NotificationType: notificationType,
	}
	if err := f.validate.Struct(body); err != nil {
		logger.Log.Warnw("rejected notification settings update", "userID", userID, "notificationType", notificationType)
		return nil, ErrInvalidNotificationType
	}

	raw, err := f.client.Post(ctx, EndpointNotifications, body)
	if err != nil {
		logger.Log.Errorw("failed to update notification settings", "userID", userID, "error", err)
		return nil, err
	}

	var result models.SubscriptionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Log.Errorw("unexpected settings response shape", "userID", userID, "error", err)
		return nil, err
	}
	return &result, nil
}

// AvailableNotificationTypes lists the channels the settings screen offers.
func (f *SettingsFacade) AvailableNotificationTypes() []models.NotificationChannel {
	return []models.NotificationChannel{
		{Value: models.NotificationEmail, Label: "Correo electrónico"},
		{Value: models.NotificationSMS, Label: "SMS"},
	}
}
