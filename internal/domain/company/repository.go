package company

import "context"

// SettingsRepository defines the interface for settings persistence.
// Get returns the singleton row, seeding defaults if none exists yet.
type SettingsRepository interface {
	// Get returns the settings singleton
	Get(ctx context.Context) (*Settings, error)

	// Save persists the settings singleton
	Save(ctx context.Context, settings *Settings) error
}
