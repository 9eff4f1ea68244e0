package models

// Setting is a single site configuration row. The API returns all settings
// re-keyed into a map from Key to SettingValue.
type Setting struct {
	ID          int    `db:"id" json:"-"`
	Key         string `db:"key" json:"key"`
	Value       string `db:"value" json:"value"`
	Description string `db:"description" json:"description"`
}

// SettingValue is the per-key payload in the settings map response.
type SettingValue struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}
