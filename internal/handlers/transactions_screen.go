package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andescapital/gw-fund-web/internal/models"
	"github.com/andescapital/gw-fund-web/internal/services"
)

// TransactionsScreenProvider defines the transactions-adapter surface the screen consumes.
type TransactionsScreenProvider interface {
	LoadTransactions(ctx context.Context) error
	Filtered() []models.Transaction
	Filters() models.TransactionFilters
	Stats() models.TransactionStats
	UpdateFilters(update services.TransactionFilterUpdate)
	ClearFilters()
}

// TransactionsScreenResponse is the view model for the transactions screen.
// swagger:model TransactionsScreenResponse
type TransactionsScreenResponse struct {
	// Transactions after local filtering, newest first
	Transactions []models.Transaction `json:"transactions"`

	// Current filter selection
	Filters models.TransactionFilters `json:"filters"`

	// Locally derived aggregates over the unfiltered ledger
	Stats models.TransactionStats `json:"stats"`

	// Whether any transactions are loaded at all
	HasTransactions bool `json:"hasTransactions"`

	// Whether the current filters matched anything
	HasFilteredResults bool `json:"hasFilteredResults"`

	// Load failure flag
	LoadError bool `json:"loadError"`
}

// FilterUpdateRequest is a partial filter change; omitted fields keep
// their current value.
// swagger:model FilterUpdateRequest
type FilterUpdateRequest struct {
	// Transaction type filter
	// example: subscribe
	Type *string `json:"type,omitempty" validate:"omitempty,oneof=all subscribe unsubscribe"`

	// Inclusive lower timestamp bound
	StartDate *time.Time `json:"startDate,omitempty"`

	// Inclusive upper timestamp bound
	EndDate *time.Time `json:"endDate,omitempty"`
}

// NewTransactionsScreenHandler returns an HTTP handler serving the transactions screen.
// @Summary Transactions screen
// @Description Loads the ledger and returns it filtered and sorted with local stats.
// @Tags screens
// @Produce json
// @Success 200 {object} handlers.TransactionsScreenResponse "Transactions screen view model"
// @Router /transactions [get]
func NewTransactionsScreenHandler(svc TransactionsScreenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadErr := svc.LoadTransactions(r.Context())

		filtered := svc.Filtered()
		stats := svc.Stats()

		resp := TransactionsScreenResponse{
			Transactions:       filtered,
			Filters:            svc.Filters(),
			Stats:              stats,
			HasTransactions:    stats.Total > 0,
			HasFilteredResults: len(filtered) > 0,
			LoadError:          loadErr != nil,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// NewUpdateFiltersHandler returns an HTTP handler that merges a filter change
// into the transactions screen and responds with the re-filtered list.
// @Summary Update transaction filters
// @Description Merges a partial filter selection and returns the re-filtered transactions.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.FilterUpdateRequest true "Filter update"
// @Success 200 {object} handlers.TransactionsScreenResponse "Updated view model"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /transactions/filters [put]
func NewUpdateFiltersHandler(svc TransactionsScreenProvider) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		var req FilterUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid filter type"})
			return
		}

		svc.UpdateFilters(services.TransactionFilterUpdate{
			Type:      req.Type,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})

		respondFilteredState(w, svc)
	}
}

// NewClearFiltersHandler returns an HTTP handler that resets the filter selection.
// @Summary Clear transaction filters
// @Description Resets the filters to their defaults and returns the re-filtered transactions.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.TransactionsScreenResponse "Updated view model"
// @Router /transactions/filters [delete]
func NewClearFiltersHandler(svc TransactionsScreenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearFilters()
		respondFilteredState(w, svc)
	}
}

func respondFilteredState(w http.ResponseWriter, svc TransactionsScreenProvider) {
	filtered := svc.Filtered()
	stats := svc.Stats()

	resp := TransactionsScreenResponse{
		Transactions:       filtered,
		Filters:            svc.Filters(),
		Stats:              stats,
		HasTransactions:    stats.Total > 0,
		HasFilteredResults: len(filtered) > 0,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
