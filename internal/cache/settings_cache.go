package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sweetline/shop-api/internal/models"
)

const settingsKey = "settings:all"

// SettingsCache caches the full re-keyed settings map. It is best-effort:
// callers fall through to the database when Redis is unavailable or the key
// has expired.
type SettingsCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewSettingsCache creates a new SettingsCache. redis may be nil, in which
// case every lookup misses and every store is a no-op.
func NewSettingsCache(redis *RedisClient, ttl time.Duration) *SettingsCache {
	return &SettingsCache{redis: redis, ttl: ttl}
}

// Get returns the cached settings map, or (nil, false) on miss or error.
func (c *SettingsCache) Get(ctx context.Context) (map[string]models.SettingValue, bool) {
	if c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, settingsKey)
	if err != nil {
		return nil, false
	}

	var settings map[string]models.SettingValue
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, false
	}
	return settings, true
}

// Set stores the settings map with the configured TTL. Errors are swallowed:
// a failed cache write must never fail the request.
func (c *SettingsCache) Set(ctx context.Context, settings map[string]models.SettingValue) {
	if c.redis == nil {
		return
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, settingsKey, string(raw), c.ttl)
}
