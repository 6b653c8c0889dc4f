package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/andescapital/gw-fund-web/internal/apiclient"
	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// ErrOperationInFlight is returned when a subscribe or unsubscribe is
// requested for a fund that already has one pending. The disabled button
// in the UI discourages this, but programmatic callers are rejected too.
var ErrOperationInFlight = errors.New("operation already in progress for this fund")

// FundsAPI defines the backend operations the funds screen needs.
type FundsAPI interface {
	GetAllFunds(ctx context.Context) ([]models.Fund, error)
	GetUserFunds(ctx context.Context, userID string) ([]models.UserFund, error)
	Subscribe(ctx context.Context, fundID, userID string) (*models.SubscriptionResult, error)
	Unsubscribe(ctx context.Context, fundID, userID string) (*models.SubscriptionResult, error)
}

// Toaster surfaces operation outcomes to the notification area.
type Toaster interface {
	ShowSuccess(message string) string
	ShowError(message string) string
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FundsService holds the catalog and subscription state for the funds and
// my-funds screens. The backend stays the source of truth: every mutation
// is followed by a full reload of both lists, never a local patch.
type FundsService struct {
	api         FundsAPI
	toasts      Toaster
	kafkaWriter KafkaWriter
	userID      string

	mu            sync.RWMutex
	funds         []models.Fund
	userFunds     []models.UserFund
	subscribing   map[string]struct{}
	unsubscribing map[string]struct{}
}

// NewFundsService creates the funds screen state for one user. kafkaWriter
// may be nil; action events are then skipped.
func NewFundsService(api FundsAPI, toasts Toaster, kafkaWriter KafkaWriter, userID string) *FundsService {
	return &FundsService{
		api:           api,
		toasts:        toasts,
		kafkaWriter:   kafkaWriter,
		userID:        userID,
		subscribing:   make(map[string]struct{}),
		unsubscribing: make(map[string]struct{}),
	}
}

// LoadFunds fetches the catalog and replaces the local copy. Errors are
// returned without surfacing a toast; the caller decides.
func (s *FundsService) LoadFunds(ctx context.Context) error {
	funds, err := s.api.GetAllFunds(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load funds", "error", err)
		return err
	}

	s.mu.Lock()
	s.funds = funds
	s.mu.Unlock()
	return nil
}

// LoadUserFunds fetches the user's subscriptions and replaces the local copy.
func (s *FundsService) LoadUserFunds(ctx context.Context) error {
	userFunds, err := s.api.GetUserFunds(ctx, s.userID)
	if err != nil {
		logger.Log.Errorw("failed to load user funds", "userID", s.userID, "error", err)
		return err
	}

	s.mu.Lock()
	s.userFunds = userFunds
	s.mu.Unlock()
	return nil
}

// Subscribe enrolls the user into a fund. On success a confirmation toast
// is shown and both lists are reloaded; the in-flight marker is cleared
// regardless of the outcome.
func (s *FundsService) Subscribe(ctx context.Context, fundID string) error {
	if err := s.setMarker(s.subscribing, fundID); err != nil {
		return err
	}
	defer s.clearMarker(s.subscribing, fundID)

	if _, err := s.api.Subscribe(ctx, fundID, s.userID); err != nil {
		s.toasts.ShowError(errorMessage(err))
		return err
	}

	s.toasts.ShowSuccess("¡Te has suscrito exitosamente al fondo!")
	s.publishAction(ctx, fundID, models.TransactionSubscribe)
	s.reload(ctx)
	return nil
}

// Unsubscribe removes the user's enrollment in a fund, symmetric to Subscribe.
func (s *FundsService) Unsubscribe(ctx context.Context, fundID string) error {
	if err := s.setMarker(s.unsubscribing, fundID); err != nil {
		return err
	}
	defer s.clearMarker(s.unsubscribing, fundID)

	if _, err := s.api.Unsubscribe(ctx, fundID, s.userID); err != nil {
		s.toasts.ShowError(errorMessage(err))
		return err
	}

	s.toasts.ShowSuccess("Has cancelado la suscripción al fondo exitosamente.")
	s.publishAction(ctx, fundID, models.TransactionUnsubscribe)
	s.reload(ctx)
	return nil
}

// IsSubscribed reports whether the fund appears in the user's current
// subscriptions. Linear scan; the expected list sizes make an index pointless.
func (s *FundsService) IsSubscribed(fundID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, uf := range s.userFunds {
		if uf.FundID == fundID {
			return true
		}
	}
	return false
}

// GetFund looks a fund up in the loaded catalog, nil when absent.
func (s *FundsService) GetFund(fundID string) *models.Fund {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, f := range s.funds {
		if f.FundID == fundID {
			return &s.funds[i]
		}
	}
	return nil
}

// Funds returns a snapshot of the loaded catalog.
func (s *FundsService) Funds() []models.Fund {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Fund, len(s.funds))
	copy(out, s.funds)
	return out
}

// UserFunds returns a snapshot of the user's subscriptions.
func (s *FundsService) UserFunds() []models.UserFund {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserFund, len(s.userFunds))
	copy(out, s.userFunds)
	return out
}

// FundsByCategory returns the loaded funds in one category.
func (s *FundsService) FundsByCategory(category string) []models.Fund {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Fund
	for _, f := range s.funds {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Subscribing returns the fund ids with a pending subscribe.
func (s *FundsService) Subscribing() []string {
	return s.markerIDs(s.subscribing)
}

// Unsubscribing returns the fund ids with a pending unsubscribe.
func (s *FundsService) Unsubscribing() []string {
	return s.markerIDs(s.unsubscribing)
}

// reload re-fetches both lists after a successful mutation. Reload
// failures are logged and swallowed; the mutation itself succeeded.
func (s *FundsService) reload(ctx context.Context) {
	if err := s.LoadFunds(ctx); err != nil {
		logger.Log.Warnw("reload of funds after mutation failed", "error", err)
	}
	if err := s.LoadUserFunds(ctx); err != nil {
		logger.Log.Warnw("reload of user funds after mutation failed", "error", err)
	}
}

// publishAction publishes a subscription action event to Kafka.
func (s *FundsService) publishAction(ctx context.Context, fundID, action string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "fund_id", fundID, "action", action)
		return
	}

	event := models.SubscriptionEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    s.userID,
		FundID:    fundID,
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal subscription event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish subscription event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("subscription event published", "event_id", event.EventID, "fund_id", fundID, "action", action)
	}
}

func (s *FundsService) setMarker(markers map[string]struct{}, fundID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := markers[fundID]; ok {
		logger.Log.Warnw("duplicate operation rejected", "fundID", fundID)
		return ErrOperationInFlight
	}
	markers[fundID] = struct{}{}
	return nil
}

func (s *FundsService) clearMarker(markers map[string]struct{}, fundID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(markers, fundID)
}

func (s *FundsService) markerIDs(markers map[string]struct{}) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(markers))
	for id := range markers {
		out = append(out, id)
	}
	return out
}

// errorMessage extracts the user-facing message from a backend failure.
func errorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
