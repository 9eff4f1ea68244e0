package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/shop-api/internal/models"
)

type mockSettingStore struct {
	calls    int
	settings []models.Setting
	err      error
}

func (m *mockSettingStore) GetAll() ([]models.Setting, error) {
	m.calls++
	return m.settings, m.err
}

type mockSettingsCache struct {
	cached map[string]models.SettingValue
	stored map[string]models.SettingValue
}

func (m *mockSettingsCache) Get(ctx context.Context) (map[string]models.SettingValue, bool) {
	return m.cached, m.cached != nil
}

func (m *mockSettingsCache) Set(ctx context.Context, settings map[string]models.SettingValue) {
	m.stored = settings
}

func TestGetSettingsRekeysRows(t *testing.T) {
	store := &mockSettingStore{settings: []models.Setting{
		{Key: "shop_name", Value: "Sweetline", Description: "Public shop name"},
		{Key: "opening_hours", Value: "09-18", Description: "Store hours"},
		{Key: "min_order", Value: "10", Description: "Minimum order amount"},
	}}
	svc := NewSettingsService(store, nil)

	settings, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, settings, 3)
	assert.Equal(t, "Sweetline", settings["shop_name"].Value)
	assert.Equal(t, "Store hours", settings["opening_hours"].Description)
}

func TestGetSettingsCacheHitSkipsStore(t *testing.T) {
	store := &mockSettingStore{}
	cached := map[string]models.SettingValue{"shop_name": {Value: "Sweetline"}}
	svc := NewSettingsService(store, &mockSettingsCache{cached: cached})

	settings, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, settings)
	assert.Equal(t, 0, store.calls)
}

func TestGetSettingsCacheMissRefreshesCache(t *testing.T) {
	store := &mockSettingStore{settings: []models.Setting{
		{Key: "shop_name", Value: "Sweetline"},
	}}
	cache := &mockSettingsCache{}
	svc := NewSettingsService(store, cache)

	settings, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, settings, cache.stored)
}

func TestGetSettingsStoreErrorPropagates(t *testing.T) {
	store := &mockSettingStore{err: errors.New("timeout")}
	svc := NewSettingsService(store, nil)

	_, err := svc.GetAll(context.Background())

	assert.EqualError(t, err, "timeout")
}
