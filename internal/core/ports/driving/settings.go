package driving

import "github.com/civica-labs/ratsdata-cli/internal/core/domain"

// SettingsService reads and writes the typed application settings over the
// configuration store.
type SettingsService interface {
	// Get returns the current settings, with defaults applied for
	// anything unset.
	Get() (*domain.AppSettings, error)

	// Save persists the given settings.
	Save(settings *domain.AppSettings) error
}
