package domain

// SourceSettings holds the paths of the four OParl JSON exports. Paths are
// injected configuration; nothing in the core hardcodes file locations.
type SourceSettings struct {
	// AgendaItems is the path of the agenda items / decisions export.
	AgendaItems string

	// People is the path of the people export.
	People string

	// Organizations is the path of the organizations export.
	Organizations string

	// Memberships is the path of the memberships export.
	Memberships string
}

// Path returns the configured path for a collection, or empty when the
// collection is unknown.
func (s SourceSettings) Path(c Collection) string {
	switch c {
	case CollectionAgendaItems:
		return s.AgendaItems
	case CollectionPeople:
		return s.People
	case CollectionOrganizations:
		return s.Organizations
	case CollectionMemberships:
		return s.Memberships
	default:
		return ""
	}
}

// DecisionSettings configures the decisions category.
type DecisionSettings struct {
	// ExcludedStatuses are the statuses hidden from the actionable view.
	ExcludedStatuses []string
}

// MemberSettings configures the members category.
type MemberSettings struct {
	// OrganizationPrefixes are stripped from organization display names.
	OrganizationPrefixes []string
}

// SyntheticSettings configures the synthetic demo collections.
type SyntheticSettings struct {
	// Seed drives the deterministic generators. The same seed always
	// produces the same collections.
	Seed int64
}

// CacheSettings configures the persistent snapshot cache.
type CacheSettings struct {
	// DataDir is where the snapshot database lives. Empty means the
	// default under the user config directory.
	DataDir string
}

// AppSettings is the full application configuration.
type AppSettings struct {
	// Sources holds the source file paths.
	Sources SourceSettings

	// Decisions configures the decisions category.
	Decisions DecisionSettings

	// Members configures the members category.
	Members MemberSettings

	// Synthetic configures the demo collections.
	Synthetic SyntheticSettings

	// Cache configures the snapshot cache.
	Cache CacheSettings
}

// DefaultAppSettings returns the default configuration.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Decisions: DecisionSettings{
			ExcludedStatuses: append([]string(nil), DefaultExcludedStatuses...),
		},
		Members: MemberSettings{
			OrganizationPrefixes: append([]string(nil), DefaultOrganizationPrefixes...),
		},
		Synthetic: SyntheticSettings{
			Seed: 1,
		},
	}
}
