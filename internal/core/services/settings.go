package services

import (
	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys.
const (
	keySourceAgendaItems   = "sources.agenda_items"
	keySourcePeople        = "sources.people"
	keySourceOrganizations = "sources.organizations"
	keySourceMemberships   = "sources.memberships"
	keyExcludedStatuses    = "decisions.excluded_statuses"
	keyOrgPrefixes         = "members.organization_prefixes"
	keySyntheticSeed       = "synthetic.seed"
	keyCacheDataDir        = "cache.data_dir"
)

// SettingsService reads and writes typed application settings over the
// configuration store.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings. Unset keys keep their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	settings.Sources.AgendaItems = s.store.GetString(keySourceAgendaItems)
	settings.Sources.People = s.store.GetString(keySourcePeople)
	settings.Sources.Organizations = s.store.GetString(keySourceOrganizations)
	settings.Sources.Memberships = s.store.GetString(keySourceMemberships)

	if _, ok := s.store.Get(keyExcludedStatuses); ok {
		settings.Decisions.ExcludedStatuses = s.store.GetStringSlice(keyExcludedStatuses)
	}
	if _, ok := s.store.Get(keyOrgPrefixes); ok {
		settings.Members.OrganizationPrefixes = s.store.GetStringSlice(keyOrgPrefixes)
	}
	if _, ok := s.store.Get(keySyntheticSeed); ok {
		settings.Synthetic.Seed = int64(s.store.GetInt(keySyntheticSeed))
	}
	settings.Cache.DataDir = s.store.GetString(keyCacheDataDir)

	return settings, nil
}

// Save persists the given settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := map[string]any{
		keySourceAgendaItems:   settings.Sources.AgendaItems,
		keySourcePeople:        settings.Sources.People,
		keySourceOrganizations: settings.Sources.Organizations,
		keySourceMemberships:   settings.Sources.Memberships,
		keyExcludedStatuses:    settings.Decisions.ExcludedStatuses,
		keyOrgPrefixes:         settings.Members.OrganizationPrefixes,
		keySyntheticSeed:       settings.Synthetic.Seed,
		keyCacheDataDir:        settings.Cache.DataDir,
	}
	for key, value := range values {
		if err := s.store.Set(key, value); err != nil {
			return err
		}
	}
	return s.store.Save()
}
