package facades

import (
	"context"
	"encoding/json"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// FundsFacade maps fund catalog and subscription operations onto single
// backend calls. It performs no retry and no caching.
type FundsFacade struct {
	client HTTPClient
}

// NewFundsFacade creates a new facade over the backend transport.
func NewFundsFacade(client HTTPClient) *FundsFacade {
	return &FundsFacade{client: client}
}

// GetAllFunds fetches the fund catalog. The backend has returned both a
// bare array and an object wrapping the array under "funds"; both shapes
// are normalized to a slice here.
func (f *FundsFacade) GetAllFunds(ctx context.Context) ([]models.Fund, error) {
	raw, err := f.client.Get(ctx, EndpointFunds, nil)
	if err != nil {
		logger.Log.Errorw("failed to fetch funds", "error", err)
		return nil, err
	}

	var funds []models.Fund
	if err := json.Unmarshal(raw, &funds); err == nil {
		return funds, nil
	}

	var wrapped struct {
		Funds []models.Fund `json:"funds"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		logger.Log.Errorw("unexpected funds response shape", "error", err)
		return nil, err
	}
	return wrapped.Funds, nil
}

// GetUserFunds fetches the funds the user is currently subscribed to.
func (f *FundsFacade) GetUserFunds(ctx context.Context, userID string) ([]models.UserFund, error) {
	raw, err := f.client.Get(ctx, EndpointFunds, map[string]string{"userId": userID})
	if err != nil {
		logger.Log.Errorw("failed to fetch user funds", "userID", userID, "error", err)
		return nil, err
	}

	var wrapped struct {
		Funds []models.UserFund `json:"funds"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		logger.Log.Errorw("unexpected user funds response shape", "userID", userID, "error", err)
		return nil, err
	}
	return wrapped.Funds, nil
}

// Subscribe enrolls the user into a fund. The userId is included in the
// body only when supplied.
func (f *FundsFacade) Subscribe(ctx context.Context, fundID, userID string) (*models.SubscriptionResult, error) {
	return f.mutate(ctx, EndpointSubscribe, fundID, userID)
}

// Unsubscribe removes the user's enrollment in a fund.
func (f *FundsFacade) Unsubscribe(ctx context.Context, fundID, userID string) (*models.SubscriptionResult, error) {
	return f.mutate(ctx, EndpointUnsubscribe, fundID, userID)
}

func (f *FundsFacade) mutate(ctx context.Context, endpoint, fundID, userID string) (*models.SubscriptionResult, error) {
	body := models.SubscribeRequest{FundID: fundID, UserID: userID}

	raw, err := f.client.Post(ctx, endpoint, body)
	if err != nil {
		logger.Log.Errorw("subscription mutation failed", "endpoint", endpoint, "fundID", fundID, "error", err)
		return nil, err
	}

	var result models.SubscriptionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Log.Errorw("unexpected subscription response shape", "endpoint", endpoint, "fundID", fundID, "error", err)
		return nil, err
	}
	return &result, nil
}
