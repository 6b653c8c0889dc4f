package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andescapital/gw-fund-web/internal/models"
)

// MyFundsScreenProvider defines the funds-adapter surface the my-funds screen consumes.
type MyFundsScreenProvider interface {
	LoadFunds(ctx context.Context) error
	LoadUserFunds(ctx context.Context) error
	Funds() []models.Fund
	UserFunds() []models.UserFund
	Unsubscribing() []string
}

// MyFundsScreenResponse is the view model for the my-funds screen.
// swagger:model MyFundsScreenResponse
type MyFundsScreenResponse struct {
	// Active subscriptions
	UserFunds []models.UserFund `json:"userFunds"`

	// Catalog entries, used to show names and amounts for subscribed funds
	Funds []models.Fund `json:"funds"`

	// Number of active subscriptions
	TotalUserFunds int `json:"totalUserFunds"`

	// Fund ids with a pending unsubscribe
	Unsubscribing []string `json:"unsubscribing"`

	// Load failure flag
	LoadError bool `json:"loadError"`
}

// NewMyFundsScreenHandler returns an HTTP handler serving the my-funds screen.
// @Summary My funds screen
// @Description Loads the user's subscriptions plus the catalog and returns the view model.
// @Tags screens
// @Produce json
// @Success 200 {object} handlers.MyFundsScreenResponse "My funds screen view model"
// @Router /my-funds [get]
func NewMyFundsScreenHandler(svc MyFundsScreenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fundsErr := svc.LoadFunds(ctx)
		userFundsErr := svc.LoadUserFunds(ctx)

		resp := MyFundsScreenResponse{
			UserFunds:     svc.UserFunds(),
			Funds:         svc.Funds(),
			Unsubscribing: svc.Unsubscribing(),
			LoadError:     fundsErr != nil || userFundsErr != nil,
		}
		resp.TotalUserFunds = len(resp.UserFunds)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
