package domain

import "strings"

// Unknown is the placeholder used when a join key cannot be resolved or a
// display field is missing. Rows are never dropped for unresolved keys.
const Unknown = "Unknown"

// DefaultOrganizationPrefixes are the prefixes stripped from organization
// display names. The first matching prefix wins; names matching none are
// left unchanged.
var DefaultOrganizationPrefixes = []string{
	"Fraktion der ",
	"Fraktionsgemeinschaft ",
}

// Person represents a council member as exported by the OParl system.
type Person struct {
	// ID is the unique identifier for the person.
	ID string

	// Name is the full display name.
	Name string
}

// Organization represents a council organization (committee, political
// group, administration unit).
type Organization struct {
	// ID is the unique identifier for the organization.
	ID string

	// Name is the raw organization name from the export.
	Name string
}

// DisplayName returns the organization name with the first matching prefix
// stripped. Prefixes is typically configuration; nil falls back to
// DefaultOrganizationPrefixes.
func (o Organization) DisplayName(prefixes []string) string {
	if prefixes == nil {
		prefixes = DefaultOrganizationPrefixes
	}
	for _, p := range prefixes {
		if strings.HasPrefix(o.Name, p) {
			return strings.TrimPrefix(o.Name, p)
		}
	}
	return o.Name
}

// Membership is a time-bounded assignment of a person to an organization
// with a role.
type Membership struct {
	// ID is the unique identifier for the membership.
	ID string

	// PersonID is the foreign key to Person.ID.
	PersonID string

	// OrganizationID is the foreign key to Organization.ID.
	OrganizationID string

	// Role is the function within the organization.
	Role string

	// StartDate is the membership start date, passed through as exported.
	StartDate string
}

// MemberRow is one denormalised row of the membership join, ready for
// display.
type MemberRow struct {
	// Name is the resolved person name, or Unknown.
	Name string

	// Organization is the resolved organization display name, or Unknown.
	Organization string

	// Role is the membership role, or Unknown when absent.
	Role string

	// StartDate is the membership start date, or Unknown when absent.
	StartDate string
}

// JoinMembers left-joins memberships with people and organizations.
// Every membership produces exactly one row: unresolved foreign keys and
// missing display fields become Unknown instead of dropping the row, so
// len(result) == len(memberships) always holds. Organization names are
// stripped of the given prefixes.
func JoinMembers(
	memberships []Membership,
	people []Person,
	organizations []Organization,
	prefixes []string,
) []MemberRow {
	personByID := make(map[string]Person, len(people))
	for _, p := range people {
		personByID[p.ID] = p
	}
	orgByID := make(map[string]Organization, len(organizations))
	for _, o := range organizations {
		orgByID[o.ID] = o
	}

	rows := make([]MemberRow, 0, len(memberships))
	for _, m := range memberships {
		row := MemberRow{
			Name:         Unknown,
			Organization: Unknown,
			Role:         orUnknown(m.Role),
			StartDate:    orUnknown(m.StartDate),
		}
		if p, ok := personByID[m.PersonID]; ok {
			row.Name = orUnknown(p.Name)
		}
		if o, ok := orgByID[m.OrganizationID]; ok {
			row.Organization = orUnknown(o.DisplayName(prefixes))
		}
		rows = append(rows, row)
	}
	return rows
}

// orUnknown substitutes Unknown for empty display values.
func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
