package driving

import (
	"context"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// SyntheticService serves the generated demo collections through the same
// query style as the real data, so the presentation layer stays agnostic
// to data provenance.
type SyntheticService interface {
	// Budgets returns the budget lines matching q.
	Budgets(ctx context.Context, q domain.BudgetQuery) ([]domain.BudgetLine, error)

	// Projects returns the community projects matching q.
	Projects(ctx context.Context, q domain.ProjectQuery) ([]domain.Project, error)

	// Services returns the service usage records matching q.
	Services(ctx context.Context, q domain.ServiceQuery) ([]domain.ServiceUsage, error)

	// Demographics returns the demographic records matching q.
	Demographics(ctx context.Context, q domain.DemographicQuery) ([]domain.DemographicRecord, error)
}
