package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// SettingsUpdater pushes the notification channel choice to the backend.
type SettingsUpdater interface {
	UpdateNotificationSettings(ctx context.Context, userID, notificationType string) (*models.SubscriptionResult, error)
}

// SessionService holds the single simulated user record. It is seeded at
// startup and never fetched from the backend; the notification channel is
// the only field that round-trips through the settings facade.
type SessionService struct {
	settings SettingsUpdater

	mu        sync.RWMutex
	user      models.User
	loading   bool
	lastError string
}

// NewSessionService seeds the session with the development user.
func NewSessionService(settings SettingsUpdater, userID string, balance decimal.Decimal) *SessionService {
	return &SessionService{
		settings: settings,
		user: models.User{
			ID:               userID,
			Balance:          balance,
			NotificationType: models.NotificationEmail,
		},
	}
}

// UpdateNotificationType changes the user's notification channel. Failures
// are recorded and returned as a result object; nothing is raised past
// this boundary.
func (s *SessionService) UpdateNotificationType(ctx context.Context, notificationType string) models.UpdateResult {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	userID := s.User().ID
	if _, err := s.settings.UpdateNotificationSettings(ctx, userID, notificationType); err != nil {
		logger.Log.Errorw("failed to update notification type", "userID", userID, "notificationType", notificationType, "error", err)
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		return models.UpdateResult{Success: false, Error: err.Error()}
	}

	s.mu.Lock()
	s.user.NotificationType = notificationType
	s.lastError = ""
	s.mu.Unlock()

	logger.Log.Infow("notification type updated", "userID", userID, "notificationType", notificationType)
	return models.UpdateResult{Success: true}
}

// UpdateBalance replaces the simulated balance.
func (s *SessionService) UpdateBalance(balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Balance = balance
}

// User returns a copy of the session record.
func (s *SessionService) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Loading reports whether a settings update is in flight.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the error string from the most recent failed update,
// empty after a success.
func (s *SessionService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearError discards the recorded error string.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}
