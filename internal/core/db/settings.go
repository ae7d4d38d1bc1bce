package db

import (
	"encoding/json"

	"github.com/qu-tools/jadwal/internal/core/models"
)

const settingsKey = "user_settings"

// LoadSettings returns the stored display settings. Missing or corrupt
// settings degrade to the defaults; this never fails the caller.
func (db *DB) LoadSettings() models.Settings {
	var blob string
	err := db.conn.QueryRow(`
		SELECT value FROM settings WHERE key = ?
	`, settingsKey).Scan(&blob)
	if err != nil {
		// Missing row and read errors both degrade to the defaults.
		return models.DefaultSettings()
	}

	var s models.Settings
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return models.DefaultSettings()
	}
	return s
}

// SaveSettings stores the display settings as one JSON blob.
func (db *DB) SaveSettings(s models.Settings) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = db.conn.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, settingsKey, string(blob))
	return err
}
