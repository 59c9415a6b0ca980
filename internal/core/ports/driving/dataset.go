package driving

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// DatasetService owns the loaded source snapshots: it loads collections on
// demand, memoizes them keyed by source fingerprint, and exposes explicit
// invalidation.
type DatasetService interface {
	// AgendaItems returns the agenda items collection with derived
	// statuses, loading and caching it on first use.
	AgendaItems(ctx context.Context) ([]domain.AgendaItem, error)

	// MemberRows returns the joined membership rows, loading and caching
	// them on first use.
	MemberRows(ctx context.Context) ([]domain.MemberRow, error)

	// Invalidate drops every in-process memoized snapshot. The next query
	// re-checks fingerprints and re-loads what changed.
	Invalidate()

	// Refresh drops the persistent snapshot cache and reloads every
	// collection from the source files.
	Refresh(ctx context.Context) error
}
