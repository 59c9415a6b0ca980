package driven

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// SnapshotStore persists parsed snapshots across process restarts, keyed by
// source fingerprint. A stale fingerprint is simply a cache miss; Purge
// drops everything.
type SnapshotStore interface {
	// SaveAgendaItems stores the parsed agenda items for a fingerprint.
	SaveAgendaItems(ctx context.Context, key string, items []domain.AgendaItem) error

	// GetAgendaItems retrieves agenda items for a fingerprint.
	// Returns domain.ErrNotFound on a cache miss.
	GetAgendaItems(ctx context.Context, key string) ([]domain.AgendaItem, error)

	// SaveMemberRows stores the joined membership rows for a combined
	// fingerprint spanning the three people-model sources.
	SaveMemberRows(ctx context.Context, key string, rows []domain.MemberRow) error

	// GetMemberRows retrieves joined membership rows for a fingerprint.
	// Returns domain.ErrNotFound on a cache miss.
	GetMemberRows(ctx context.Context, key string) ([]domain.MemberRow, error)

	// Purge removes all cached snapshots.
	Purge(ctx context.Context) error
}
