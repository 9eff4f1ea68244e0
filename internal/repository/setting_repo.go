package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// SettingRepository handles data access for site settings.
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetAll returns all settings rows.
func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	const q = `SELECT id, key, value, description FROM site_settings ORDER BY key`

	var settings []models.Setting
	if err := r.db.Select(&settings, q); err != nil {
		return nil, err
	}
	return settings, nil
}
