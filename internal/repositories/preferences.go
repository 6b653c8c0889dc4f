package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/models"
)

// PreferencesRepository persists each user's UI preference blob in Redis
// under a single key, as one JSON value.
type PreferencesRepository struct {
	client *redis.Client
}

// NewPreferencesRepository creates a new repository instance.
func NewPreferencesRepository(client *redis.Client) *PreferencesRepository {
	return &PreferencesRepository{client: client}
}

// Get fetches the preference blob for a user. A missing key yields the
// defaults without an error.
func (r *PreferencesRepository) Get(ctx context.Context, userID string) (models.Preferences, error) {
	key := preferencesKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return models.DefaultPreferences(), nil
		}
		logger.Log.Errorw("failed to read preferences", "key", key, "error", err)
		return models.DefaultPreferences(), err
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		logger.Log.Errorw("corrupt preferences blob, falling back to defaults", "key", key, "error", err)
		return models.DefaultPreferences(), err
	}

	return prefs, nil
}

// Set replaces the preference blob for a user. Preferences have no
// expiration; they live until removed.
func (r *PreferencesRepository) Set(ctx context.Context, userID string, prefs models.Preferences) error {
	key := preferencesKey(userID)

	data, err := json.Marshal(prefs)
	if err != nil {
		logger.Log.Errorw("failed to marshal preferences", "key", key, "error", err)
		return err
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		logger.Log.Errorw("failed to write preferences", "key", key, "error", err)
		return err
	}

	return nil
}

// Remove deletes the stored blob, restoring defaults on the next Get.
func (r *PreferencesRepository) Remove(ctx context.Context, userID string) error {
	key := preferencesKey(userID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		logger.Log.Errorw("failed to delete preferences", "key", key, "error", err)
		return err
	}
	return nil
}

func preferencesKey(userID string) string {
	return fmt.Sprintf("ui_preferences:%s", userID)
}
