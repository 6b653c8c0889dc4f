package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recorded by the backend ledger.
const (
	TransactionSubscribe   = "subscribe"
	TransactionUnsubscribe = "unsubscribe"
)

// TransactionFilterAll selects every transaction type.
const TransactionFilterAll = "all"

// Transaction is an append-only ledger entry for a past subscribe or
// unsubscribe action. The client only reads, filters, and sorts it.
// swagger:model Transaction
type Transaction struct {
	// Unique transaction identifier
	TransactionID string `json:"transactionId"`

	// Transaction type, subscribe or unsubscribe
	Type string `json:"type"`

	// Fund the transaction refers to
	FundID string `json:"fundId"`

	// Fund display name at the time of the transaction
	FundName string `json:"fundName,omitempty"`

	// Amount moved by the transaction in COP
	Amount decimal.Decimal `json:"amount"`

	// Time the transaction occurred
	Timestamp time.Time `json:"timestamp"`
}

// TransactionFilters holds the local filter selection for the transactions screen.
// swagger:model TransactionFilters
type TransactionFilters struct {
	// Transaction type filter: all, subscribe or unsubscribe
	Type string `json:"type"`

	// Inclusive lower timestamp bound
	StartDate *time.Time `json:"startDate,omitempty"`

	// Inclusive upper timestamp bound
	EndDate *time.Time `json:"endDate,omitempty"`
}

// DefaultTransactionFilters returns the filter selection used on screen entry.
func DefaultTransactionFilters() TransactionFilters {
	return TransactionFilters{Type: TransactionFilterAll}
}

// TransactionStats are aggregates derived locally from the loaded ledger.
// swagger:model TransactionStats
type TransactionStats struct {
	// Total number of loaded transactions
	Total int `json:"total"`

	// Number of subscribe transactions
	Subscriptions int `json:"subscriptions"`

	// Number of unsubscribe transactions
	Unsubscriptions int `json:"unsubscriptions"`

	// Sum of all transaction amounts
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// Most recent transaction, nil when the ledger is empty
	LastTransaction *Transaction `json:"lastTransaction,omitempty"`

	// Transactions within the current calendar month, local clock
	ThisMonth int `json:"thisMonth"`
}
