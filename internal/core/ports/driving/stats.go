package driving

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// StatsService computes the aggregated views behind the dashboard's KPIs
// and charts. Every method is a pure composition of the category services
// and the domain aggregation primitives.
type StatsService interface {
	// Decisions summarises the decisions category under q.
	Decisions(ctx context.Context, q domain.DecisionQuery) (*domain.DecisionStats, error)

	// Members summarises the members category under q.
	Members(ctx context.Context, q domain.MemberQuery) (*domain.MemberStats, error)

	// Budgets summarises the budgets category under q.
	Budgets(ctx context.Context, q domain.BudgetQuery) (*domain.BudgetStats, error)

	// Projects summarises the projects category under q.
	Projects(ctx context.Context, q domain.ProjectQuery) (*domain.ProjectStats, error)

	// Services summarises the services category under q.
	Services(ctx context.Context, q domain.ServiceQuery) (*domain.ServiceStats, error)

	// Demographics summarises the demographics category under q.
	Demographics(ctx context.Context, q domain.DemographicQuery) (*domain.DemographicStats, error)
}
