package driven

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// CollectionReader parses the OParl JSON exports into typed records.
// Read failures carry the source identity as a *domain.LoadError wrapping
// domain.ErrSourceNotFound or domain.ErrSourceMalformed.
type CollectionReader interface {
	// Fingerprint returns the current fingerprint of the file at path.
	Fingerprint(path string) (domain.SourceFingerprint, error)

	// ReadAgendaItems parses the agenda items export.
	ReadAgendaItems(ctx context.Context, path string) ([]domain.AgendaItem, error)

	// ReadPeople parses the people export.
	ReadPeople(ctx context.Context, path string) ([]domain.Person, error)

	// ReadOrganizations parses the organizations export.
	ReadOrganizations(ctx context.Context, path string) ([]domain.Organization, error)

	// ReadMemberships parses the memberships export.
	ReadMemberships(ctx context.Context, path string) ([]domain.Membership, error)
}
