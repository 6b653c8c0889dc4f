package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andescapital/gw-fund-web/internal/apiclient"
	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/services"
)

// FundSubscriber defines the funds-adapter mutations the action routes dispatch.
type FundSubscriber interface {
	Subscribe(ctx context.Context, fundID string) error
	Unsubscribe(ctx context.Context, fundID string) error
}

// SubscribeResponse confirms a dispatched subscription mutation.
// swagger:model SubscribeResponse
type SubscribeResponse struct {
	// Success message
	// example: Suscripción exitosa
	Message string `json:"message"`

	// Fund the operation targeted
	FundID string `json:"fundId"`
}

// NewSubscribeHandler returns an HTTP handler that subscribes the user to a fund.
// @Summary Subscribe to fund
// @Description Dispatches a subscribe into the funds adapter. On success a toast is raised and both fund lists are reloaded.
// @Tags funds
// @Produce json
// @Param fundID path string true "Fund ID"
// @Success 200 {object} handlers.SubscribeResponse "Subscribed"
// @Failure 409 {object} handlers.ErrorResponse "Operation already in progress"
// @Failure 502 {object} handlers.ErrorResponse "Backend unreachable"
// @Router /funds/{fundID}/subscribe [post]
func NewSubscribeHandler(svc FundSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fundID := chi.URLParam(r, "fundID")
		if fundID == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "missing fund id"})
			return
		}

		if err := svc.Subscribe(r.Context(), fundID); err != nil {
			writeMutationError(w, fundID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(SubscribeResponse{
			Message: "Suscripción exitosa",
			FundID:  fundID,
		})
	}
}

// NewUnsubscribeHandler returns an HTTP handler that cancels a fund subscription.
// @Summary Unsubscribe from fund
// @Description Dispatches an unsubscribe into the funds adapter, symmetric to subscribe.
// @Tags funds
// @Produce json
// @Param fundID path string true "Fund ID"
// @Success 200 {object} handlers.SubscribeResponse "Unsubscribed"
// @Failure 409 {object} handlers.ErrorResponse "Operation already in progress"
// @Failure 502 {object} handlers.ErrorResponse "Backend unreachable"
// @Router /funds/{fundID}/unsubscribe [post]
func NewUnsubscribeHandler(svc FundSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fundID := chi.URLParam(r, "fundID")
		if fundID == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "missing fund id"})
			return
		}

		if err := svc.Unsubscribe(r.Context(), fundID); err != nil {
			writeMutationError(w, fundID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(SubscribeResponse{
			Message: "Cancelación de suscripción exitosa",
			FundID:  fundID,
		})
	}
}

// writeMutationError maps adapter errors onto HTTP statuses: duplicate
// in-flight operations to 409, backend statuses pass through, network
// failures (status 0) to 502.
func writeMutationError(w http.ResponseWriter, fundID string, err error) {
	logger.Log.Errorw("subscription mutation failed", "fundID", fundID, "error", err)

	w.Header().Set("Content-Type", "application/json")

	if errors.Is(err, services.ErrOperationInFlight) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: apiErr.Message})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
}
