package company

import (
	"context"
	"time"
)

// SettingsRepository stores the company singleton.
type SettingsRepository interface {
	// Get retrieves the settings row; ErrSettingsNotFound when never saved
	Get(ctx context.Context) (Settings, error)

	// Upsert creates or replaces the singleton
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// ListByPeriod retrieves holidays with date in [start, end]
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Holiday, error)

	List(ctx context.Context) ([]Holiday, error)

	Delete(ctx context.Context, id string) error
}
