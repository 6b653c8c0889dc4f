package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// FundsScreenProvider defines the funds-adapter surface this screen consumes.
type FundsScreenProvider interface {
	LoadFunds(ctx context.Context) error
	LoadUserFunds(ctx context.Context) error
	Funds() []models.Fund
	UserFunds() []models.UserFund
	FundsByCategory(category string) []models.Fund
	Subscribing() []string
	Unsubscribing() []string
}

// FundsScreenResponse is the view model for the funds catalog screen.
// swagger:model FundsScreenResponse
type FundsScreenResponse struct {
	// Full fund catalog
	Funds []models.Fund `json:"funds"`

	// Funds the user is subscribed to
	UserFunds []models.UserFund `json:"userFunds"`

	// Catalog partitioned by category
	FPVFunds []models.Fund `json:"fpvFunds"`
	FICFunds []models.Fund `json:"ficFunds"`

	// List sizes
	TotalFunds     int `json:"totalFunds"`
	TotalUserFunds int `json:"totalUserFunds"`

	// Fund ids with a pending operation; the UI disables their buttons
	Subscribing   []string `json:"subscribing"`
	Unsubscribing []string `json:"unsubscribing"`

	// Load failure flags; screen-entry loads never raise toasts
	FundsLoadError     bool `json:"fundsLoadError"`
	UserFundsLoadError bool `json:"userFundsLoadError"`
}

// NewFundsScreenHandler returns an HTTP handler serving the funds catalog screen.
// @Summary Funds catalog screen
// @Description Loads the fund catalog and the user's subscriptions and returns the combined view model. Load failures are reported as flags, not toasts.
// @Tags screens
// @Produce json
// @Success 200 {object} handlers.FundsScreenResponse "Funds screen view model"
// @Router /funds [get]
func NewFundsScreenHandler(svc FundsScreenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Independent loads; each failure only flags its own slice.
		fundsErr := svc.LoadFunds(ctx)
		userFundsErr := svc.LoadUserFunds(ctx)

		resp := FundsScreenResponse{
			Funds:              svc.Funds(),
			UserFunds:          svc.UserFunds(),
			FPVFunds:           svc.FundsByCategory(models.CategoryFPV),
			FICFunds:           svc.FundsByCategory(models.CategoryFIC),
			Subscribing:        svc.Subscribing(),
			Unsubscribing:      svc.Unsubscribing(),
			FundsLoadError:     fundsErr != nil,
			UserFundsLoadError: userFundsErr != nil,
		}
		resp.TotalFunds = len(resp.Funds)
		resp.TotalUserFunds = len(resp.UserFunds)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
