package database

import (
	"context"
	"database/sql"
)

// GetSetting returns the stored value and whether it exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value.Valid {
		return value.String, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return wrapSettingErr("set", ErrEmptyKey)
	}
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", err)
}
