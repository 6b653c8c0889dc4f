package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// TransactionsReader fetches the user's ledger from the backend.
type TransactionsReader interface {
	GetUserTransactions(ctx context.Context, userID string, filters map[string]string) ([]models.Transaction, error)
}

// TransactionsService holds the transactions screen state: the loaded
// ledger and the local filter selection. Filtering, sorting and stats are
// recomputed locally; the backend is only hit by LoadTransactions.
type TransactionsService struct {
	api    TransactionsReader
	userID string

	mu           sync.RWMutex
	transactions []models.Transaction
	filters      models.TransactionFilters
}

// NewTransactionsService creates the screen state for one user.
func NewTransactionsService(api TransactionsReader, userID string) *TransactionsService {
	return &TransactionsService{
		api:     api,
		userID:  userID,
		filters: models.DefaultTransactionFilters(),
	}
}

// LoadTransactions fetches the full ledger and replaces the local copy.
// Errors are returned to the caller without surfacing a toast.
func (s *TransactionsService) LoadTransactions(ctx context.Context) error {
	transactions, err := s.api.GetUserTransactions(ctx, s.userID, nil)
	if err != nil {
		logger.Log.Errorw("failed to load transactions", "userID", s.userID, "error", err)
		return err
	}

	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()
	return nil
}

// TransactionFilterUpdate carries a partial filter change; nil fields keep
// their current value.
type TransactionFilterUpdate struct {
	Type      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateFilters merges a partial update into the current filter selection.
func (s *TransactionsService) UpdateFilters(update TransactionFilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Type != nil {
		s.filters.Type = *update.Type
	}
	if update.StartDate != nil {
		s.filters.StartDate = update.StartDate
	}
	if update.EndDate != nil {
		s.filters.EndDate = update.EndDate
	}
}

// ClearFilters resets the selection to the screen-entry defaults.
func (s *TransactionsService) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.DefaultTransactionFilters()
}

// Filters returns the current filter selection.
func (s *TransactionsService) Filters() models.TransactionFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Transactions returns the loaded ledger in backend order.
func (s *TransactionsService) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Filtered applies the current filters and returns the result ordered by
// timestamp, newest first. Equal timestamps are left unordered.
func (s *TransactionsService) Filtered() []models.Transaction {
	s.mu.RLock()
	filters := s.filters
	filtered := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if filters.Type != models.TransactionFilterAll && t.Type != filters.Type {
			continue
		}
		if filters.StartDate != nil && t.Timestamp.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && t.Timestamp.After(*filters.EndDate) {
			continue
		}
		filtered = append(filtered, t)
	}
	s.mu.RUnlock()

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})
	return filtered
}

// Stats derives local aggregates from the loaded ledger. The current-month
// count matches on local wall-clock month and year.
func (s *TransactionsService) Stats() models.TransactionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.TransactionStats{
		Total:       len(s.transactions),
		TotalAmount: decimal.Zero,
	}

	now := time.Now()
	for i, t := range s.transactions {
		switch t.Type {
		case models.TransactionSubscribe:
			stats.Subscriptions++
		case models.TransactionUnsubscribe:
			stats.Unsubscriptions++
		}
		stats.TotalAmount = stats.TotalAmount.Add(t.Amount)

		if t.Timestamp.Month() == now.Month() && t.Timestamp.Year() == now.Year() {
			stats.ThisMonth++
		}

		if stats.LastTransaction == nil || t.Timestamp.After(stats.LastTransaction.Timestamp) {
			stats.LastTransaction = &s.transactions[i]
		}
	}
	return stats
}

// TransactionsByFund returns the loaded transactions for one fund.
func (s *TransactionsService) TransactionsByFund(fundID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Transaction
	for _, t := range s.transactions {
		if t.FundID == fundID {
			out = append(out, t)
		}
	}
	return out
}

// LastTransactionByType returns the most recent transaction of the given
// type, nil when none exists.
func (s *TransactionsService) LastTransactionByType(transactionType string) *models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last *models.Transaction
	for i, t := range s.transactions {
		if t.Type != transactionType {
			continue
		}
		if last == nil || t.Timestamp.After(last.Timestamp) {
			last = &s.transactions[i]
		}
	}
	return last
}
