package service

import (
	"context"

	"github.com/sweetline/shop-api/internal/models"
)

// SettingStore is the data access surface for site settings.
type SettingStore interface {
	GetAll() ([]models.Setting, error)
}

// SettingsCache caches the re-keyed settings map. Lookups that miss or fail
// must fall through to the store.
type SettingsCache interface {
	Get(ctx context.Context) (map[string]models.SettingValue, bool)
	Set(ctx context.Context, settings map[string]models.SettingValue)
}

// SettingsService serves the full settings map, re-keyed from rows.
type SettingsService struct {
	settings SettingStore
	cache    SettingsCache
}

// NewSettingsService constructs a SettingsService. cache may be nil to
// disable caching.
func NewSettingsService(settings SettingStore, cache SettingsCache) *SettingsService {
	return &SettingsService{settings: settings, cache: cache}
}

// GetAll returns every setting re-keyed into a map from key to
// {value, description}. The cache is consulted first and refreshed on miss.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]models.SettingValue, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	rows, err := s.settings.GetAll()
	if err != nil {
		return nil, err
	}

	settings := make(map[string]models.SettingValue, len(rows))
	for _, row := range rows {
		settings[row.Key] = models.SettingValue{
			Value:       row.Value,
			Description: row.Description,
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, settings)
	}
	return settings, nil
}
