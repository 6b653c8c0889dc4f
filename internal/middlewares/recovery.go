package middlewares

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// FallbackResponse replaces the screen payload when rendering a request
// panicked. The client offers the user a retry, which is simply the same
// request issued again.
// swagger:model FallbackResponse
type FallbackResponse struct {
	// Error message shown on the fallback screen
	Error string `json:"error"`

	// Marks the payload as the fallback rather than screen data
	Fallback bool `json:"fallback"`
}

// RecoveryMiddleware catches panics from the handler tree, logs them with
// the request ID, and renders the fallback payload instead of the screen.
func RecoveryMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic while handling request",
						"request_id", GetRequestIDFromContext(r.Context()),
						"uri", r.RequestURI,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(FallbackResponse{
						Error:    "Algo salió mal",
						Fallback: true,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
