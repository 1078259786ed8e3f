package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	preferenceKeyPrefix = "currency:pref:"
	// Preferences survive reloads but are not precious; let idle sessions age out.
	preferenceTTL = 30 * 24 * time.Hour
)

// RedisPreferenceRepository persists per-session display-currency
// preferences as plain redis strings.
type RedisPreferenceRepository struct {
	client *redis.Client
}

// NewRedisPreferenceRepository creates a redis-backed preference repository.
func NewRedisPreferenceRepository(client *redis.Client) portsrepo.PreferenceRepository {
	return &RedisPreferenceRepository{client: client}
}

// GetPreference returns the stored currency code for a session, or "" when
// none is stored.
func (r *RedisPreferenceRepository) GetPreference(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, preferenceKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read preference for session %s: %w", sessionID, err)
	}
	return val, nil
}

// SavePreference stores the selected currency code for a session.
func (r *RedisPreferenceRepository) SavePreference(ctx context.Context, sessionID, currencyCode string) error {
	if err := r.client.Set(ctx, preferenceKeyPrefix+sessionID, currencyCode, preferenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to save preference for session %s: %w", sessionID, err)
	}
	return nil
}
