package models

import "time"

// UserFund represents an active subscription of a user to a fund.
// It exists only while the user is subscribed.
// swagger:model UserFund
type UserFund struct {
	// Identifier of the subscribed user
	UserID string `json:"userId,omitempty"`

	// Identifier of the fund
	FundID string `json:"fundId"`

	// Time the subscription was created
	SubscribedAt time.Time `json:"subscribedAt"`
}

// SubscriptionResult is the backend's response to a subscribe or unsubscribe call.
// swagger:model SubscriptionResult
type SubscriptionResult struct {
	// Whether the operation succeeded
	Success bool `json:"success"`

	// Human-readable operation outcome
	Message string `json:"message"`

	// Created subscription, present on successful subscribe only
	UserFund *UserFund `json:"userFund,omitempty"`
}

// SubscribeRequest is the body sent to the backend subscribe and unsubscribe endpoints.
type SubscribeRequest struct {
	FundID string `json:"fundId"`
	UserID string `json:"userId,omitempty"`
}
