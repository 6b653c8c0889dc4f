package facades

import (
	"context"
	"encoding/json"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// TransactionsFacade reads the user's transaction ledger from the backend.
type TransactionsFacade struct {
	client HTTPClient
}

// NewTransactionsFacade creates a new facade over the backend transport.
func NewTransactionsFacade(client HTTPClient) *TransactionsFacade {
	return &TransactionsFacade{client: client}
}

// GetUserTransactions fetches the ledger for a user. Extra filter keys are
// merged into the query string next to userId.
func (f *TransactionsFacade) GetUserTransactions(ctx context.Context, userID string, filters map[string]string) ([]models.Transaction, error) {
	params := map[string]string{"userId": userID}
	for k, v := range filters {
		params[k] = v
	}

	raw, err := f.client.Get(ctx, EndpointTransactions, params)
	if err != nil {
		logger.Log.Errorw("failed to fetch transactions", "userID", userID, "error", err)
		return nil, err
	}

	var wrapped struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		logger.Log.Errorw("unexpected transactions response shape", "userID", userID, "error", err)
		return nil, err
	}
	return wrapped.Transactions, nil
}
