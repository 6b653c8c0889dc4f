package facades

import (
	"context"
	"encoding/json"
)

// Backend REST endpoints, relative to the configured base URL.
const (
	EndpointFunds         = "/api/v1/funds/"
	EndpointSubscribe     = "/api/v1/subscribe/"
	EndpointUnsubscribe   = "/api/v1/unsubscribe/"
	EndpointTransactions  = "/api/v1/transactions/"
	EndpointNotifications = "/api/v1/settings/notifications/"
	EndpointHealth        = "/api/v1/health/"
)

// HTTPClient is the transport every facade reaches the backend through.
type HTTPClient interface {
	Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}
