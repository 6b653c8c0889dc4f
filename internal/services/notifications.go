package services

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// NotificationService owns the in-memory toast list: newest first, capped
// at models.MaxToasts, oldest dropped past the cap. Auto-close timers are
// tied to each toast and stopped when it is removed, so a dismissed toast
// leaves no pending callback behind.
type NotificationService struct {
	mu     sync.Mutex
	toasts []models.Toast
	timers map[string]*time.Timer
}

// NewNotificationService creates an empty toast list.
func NewNotificationService() *NotificationService {
	return &NotificationService{
		timers: make(map[string]*time.Timer),
	}
}

// Add inserts a toast at the head of the list and returns its generated id.
// A zero Type defaults to info and a zero Duration to the default delay;
// AutoClose is taken as given.
func (s *NotificationService) Add(toast models.Toast) string {
	if toast.Type == "" {
		toast.Type = models.ToastInfo
	}
	if toast.Duration <= 0 {
		toast.Duration = models.DefaultToastDuration.Milliseconds()
	}
	toast.ID = ulid.Make().String()
	toast.Timestamp = time.Now()

	s.mu.Lock()
	s.toasts = append([]models.Toast{toast}, s.toasts...)
	for len(s.toasts) > models.MaxToasts {
		evicted := s.toasts[len(s.toasts)-1]
		s.toasts = s.toasts[:len(s.toasts)-1]
		s.stopTimer(evicted.ID)
	}
	if toast.AutoClose {
		id := toast.ID
		s.timers[id] = time.AfterFunc(time.Duration(toast.Duration)*time.Millisecond, func() {
			s.Remove(id)
		})
	}
	s.mu.Unlock()

	return toast.ID
}

// Remove dismisses a toast by id and cancels its auto-close timer.
// Removing an unknown id is a no-op.
func (s *NotificationService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}
	s.stopTimer(id)
}

// ClearAll dismisses every toast.
func (s *NotificationService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toasts = nil
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// Notifications returns a snapshot of the current toast list, newest first.
func (s *NotificationService) Notifications() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// ShowSuccess adds an auto-closing success toast.
func (s *NotificationService) ShowSuccess(message string) string {
	return s.Add(models.Toast{
		Type:      models.ToastSuccess,
		Title:     "Éxito",
		Message:   message,
		AutoClose: true,
	})
}

// ShowError adds an error toast. Errors stay until dismissed.
func (s *NotificationService) ShowError(message string) string {
	return s.Add(models.Toast{
		Type:    models.ToastError,
		Title:   "Error",
		Message: message,
	})
}

// ShowWarning adds an auto-closing warning toast.
func (s *NotificationService) ShowWarning(message string) string {
	return s.Add(models.Toast{
		Type:      models.ToastWarning,
		Title:     "Advertencia",
		Message:   message,
		AutoClose: true,
	})
}

// ShowInfo adds an auto-closing informational toast.
func (s *NotificationService) ShowInfo(message string) string {
	return s.Add(models.Toast{
		Type:      models.ToastInfo,
		Title:     "Información",
		Message:   message,
		AutoClose: true,
	})
}

// stopTimer cancels and forgets a toast's auto-close timer. Caller holds the lock.
func (s *NotificationService) stopTimer(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}
