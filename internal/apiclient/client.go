package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andescapital/gw-fund-web/internal/logger"
)

// APIError is the single error shape every backend call resolves to.
// Network-level failures carry Status 0 and the original error text
// under Data["originalError"].
type APIError struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Client is an HTTP client bound to the fund backend base URL.
// It merges default JSON headers into every request and normalizes
// every failure into *APIError.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	defaultHeaders map[string]string
}

// New creates a Client for the given base URL. A nil httpClient falls
// back to a default one with no timeout; in-flight requests are never
// cancelled by the client itself.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// Get issues a GET request. A non-nil params map is serialized into the
// query string as flat key=value pairs.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		path = path + "?" + q.Encode()
	}
	return c.request(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPut, path, body)
}

// request performs one HTTP call against the backend. 2xx responses return
// the raw JSON body unchanged (204 returns an empty object); everything
// else resolves to *APIError.
func (c *Client) request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, connectionError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, connectionError(err)
	}
	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed", "method", method, "path", path, "error", err)
		return nil, connectionError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to read backend response", "method", method, "path", path, "error", err)
		return nil, connectionError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent {
		return json.RawMessage(`{}`), nil
	}

	return json.RawMessage(raw), nil
}

// errorFromResponse builds an APIError from a non-2xx response, keeping
// the backend's message when the body carries one.
func errorFromResponse(status int, raw []byte) *APIError {
	data := map[string]any{}
	message := fmt.Sprintf("HTTP Error: %d", status)

	if err := json.Unmarshal(raw, &data); err == nil {
		if msg, ok := data["message"].(string); ok && msg != "" {
			message = msg
		}
	} else {
		data = map[string]any{}
	}

	return &APIError{
		Message: message,
		Status:  status,
		Data:    data,
	}
}

// connectionError wraps a network-level failure (no connection, DNS,
// cancelled request) into the uniform error shape with status 0.
func connectionError(err error) *APIError {
	return &APIError{
		Message: "connection error",
		Status:  0,
		Data: map[string]any{
			"originalError": err.Error(),
		},
	}
}
