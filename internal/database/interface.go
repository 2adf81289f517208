package database

import (
	"context"

	"github.com/akyairhashvil/rtauth/internal/models"
)

// EventRepository defines auth journal operations.
type EventRepository interface {
	RecordEvent(ctx context.Context, ev models.AuthEvent) error
	RecentEvents(ctx context.Context, limit int) ([]models.AuthEvent, error)
	EventsByOp(ctx context.Context, op string, limit int) ([]models.AuthEvent, error)
	CountEvents(ctx context.Context, op, outcome string) (int, error)
}

// SettingsRepository defines key/value setting operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	EventRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
