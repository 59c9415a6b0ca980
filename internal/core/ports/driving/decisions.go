package driving

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// DecisionService answers queries over the council decisions category.
type DecisionService interface {
	// Load returns the full collection and the actionable view (items
	// whose status is outside the configured excluded set).
	Load(ctx context.Context) (all, actionable []domain.AgendaItem, err error)

	// Query returns the items matching q, preserving source order.
	Query(ctx context.Context, q domain.DecisionQuery) ([]domain.AgendaItem, error)
}

// MemberService answers queries over the joined membership rows.
type MemberService interface {
	// Load returns every joined membership row.
	Load(ctx context.Context) ([]domain.MemberRow, error)

	// Query returns the rows matching q, preserving source order.
	Query(ctx context.Context, q domain.MemberQuery) ([]domain.MemberRow, error)
}
