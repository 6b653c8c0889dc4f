package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// PreferencesStore persists the per-user UI preference blob.
type PreferencesStore interface {
	Get(ctx context.Context, userID string) (models.Preferences, error)
	Set(ctx context.Context, userID string, prefs models.Preferences) error
}

// UserIDProvider resolves the session user id for preference storage.
type UserIDProvider interface {
	User() models.User
}

// NewGetPreferencesHandler returns an HTTP handler serving the UI preferences.
// A user without a stored blob receives the defaults.
// @Summary Get UI preferences
// @Description Returns the stored preference blob, or the defaults when none was saved.
// @Tags preferences
// @Produce json
// @Success 200 {object} models.Preferences "UI preferences"
// @Router /preferences [get]
func NewGetPreferencesHandler(store PreferencesStore, session UserIDProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := session.User().ID

		prefs, err := store.Get(r.Context(), userID)
		if err != nil {
			// Serve defaults; broken preferences must not break the screen.
			logger.Log.Warnw("serving default preferences", "userID", userID, "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(prefs)
	}
}

// NewUpdatePreferencesHandler returns an HTTP handler replacing the UI preferences.
// @Summary Update UI preferences
// @Description Replaces the stored preference blob for the session user.
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body models.Preferences true "UI preferences"
// @Success 200 {object} models.Preferences "Stored preferences"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /preferences [put]
func NewUpdatePreferencesHandler(store PreferencesStore, session UserIDProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs models.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		userID := session.User().ID
		if err := store.Set(r.Context(), userID, prefs); err != nil {
			logger.Log.Errorw("failed to store preferences", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(prefs)
	}
}
