package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

func decimalFromMillions(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 1_000_000)
}

func syntheticFixture(seed int64) *SyntheticService {
	settings := domain.DefaultAppSettings()
	settings.Synthetic.Seed = seed
	return NewSyntheticService(settings)
}

func TestSyntheticService_DeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	first, err := syntheticFixture(42).Budgets(ctx, domain.BudgetQuery{})
	require.NoError(t, err)
	second, err := syntheticFixture(42).Budgets(ctx, domain.BudgetQuery{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The seed drives every field, project UUIDs included.
	firstProjects, err := syntheticFixture(42).Projects(ctx, domain.ProjectQuery{})
	require.NoError(t, err)
	secondProjects, err := syntheticFixture(42).Projects(ctx, domain.ProjectQuery{})
	require.NoError(t, err)
	assert.Equal(t, firstProjects, secondProjects)
}

func TestSyntheticService_DifferentSeedsDiffer(t *testing.T) {
	ctx := context.Background()

	first, err := syntheticFixture(1).Budgets(ctx, domain.BudgetQuery{})
	require.NoError(t, err)
	second, err := syntheticFixture(2).Budgets(ctx, domain.BudgetQuery{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSyntheticService_BudgetShape(t *testing.T) {
	lines, err := syntheticFixture(1).Budgets(context.Background(), domain.BudgetQuery{})
	require.NoError(t, err)

	// Four years times five departments.
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.GreaterOrEqual(t, line.Year, 2021)
		assert.LessOrEqual(t, line.Year, 2024)
		assert.True(t, line.Planned.GreaterThanOrEqual(decimalFromMillions(100)), "planned below range: %s", line.Planned)
		assert.True(t, line.Planned.LessThanOrEqual(decimalFromMillions(500)), "planned above range: %s", line.Planned)
		assert.True(t, line.Expenditure.GreaterThanOrEqual(decimalFromMillions(80)), "expenditure below range: %s", line.Expenditure)
		assert.True(t, line.Expenditure.LessThanOrEqual(decimalFromMillions(450)), "expenditure above range: %s", line.Expenditure)
	}
}

func TestSyntheticService_BudgetFilters(t *testing.T) {
	ctx := context.Background()
	svc := syntheticFixture(1)

	lines, err := svc.Budgets(ctx, domain.BudgetQuery{
		Years:       domain.YearRange{From: 2022, To: 2023},
		Departments: []string{"Infrastructure"},
	})
	require.NoError(t, err)

	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "Infrastructure", line.Department)
		assert.Contains(t, []int{2022, 2023}, line.Year)
	}
}

func TestSyntheticService_ProjectShape(t *testing.T) {
	projects, err := syntheticFixture(1).Projects(context.Background(), domain.ProjectQuery{})
	require.NoError(t, err)

	require.Len(t, projects, 30)
	seen := make(map[string]bool)
	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate project id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Status.IsValid())
		assert.GreaterOrEqual(t, p.Latitude, 49.38)
		assert.LessOrEqual(t, p.Latitude, 49.42)
		assert.GreaterOrEqual(t, p.Longitude, 8.65)
		assert.LessOrEqual(t, p.Longitude, 8.72)
		if p.Progress != nil {
			assert.GreaterOrEqual(t, *p.Progress, 0)
			assert.LessOrEqual(t, *p.Progress, 100)
		}
	}
}

func TestSyntheticService_ProjectStatusFilter(t *testing.T) {
	ctx := context.Background()
	svc := syntheticFixture(1)

	projects, err := svc.Projects(ctx, domain.ProjectQuery{
		Statuses: []string{domain.ProjectCompleted.String()},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, projects)
	for _, p := range projects {
		assert.Equal(t, domain.ProjectCompleted, p.Status)
	}

	none, err := svc.Projects(ctx, domain.ProjectQuery{Statuses: []string{}})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSyntheticService_ServiceShape(t *testing.T) {
	usage, err := syntheticFixture(1).Services(context.Background(), domain.ServiceQuery{})
	require.NoError(t, err)

	// Four years times five service types.
	require.Len(t, usage, 20)
	for _, u := range usage {
		assert.GreaterOrEqual(t, u.Planned, 1000)
		assert.LessOrEqual(t, u.Planned, 5000)
		assert.GreaterOrEqual(t, u.Actual, 900)
		assert.LessOrEqual(t, u.Actual, 5200)
	}
}

func TestSyntheticService_ServiceFilters(t *testing.T) {
	usage, err := syntheticFixture(1).Services(context.Background(), domain.ServiceQuery{
		Years: domain.YearRange{From: 2024},
		Types: []string{"Housing", "Transport"},
	})
	require.NoError(t, err)

	require.Len(t, usage, 2)
	for _, u := range usage {
		assert.Equal(t, 2024, u.Year)
	}
}

func TestSyntheticService_DemographicShape(t *testing.T) {
	records, err := syntheticFixture(1).Demographics(context.Background(), domain.DemographicQuery{})
	require.NoError(t, err)

	// Six years times six age groups.
	require.Len(t, records, 36)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.Year, 2018)
		assert.LessOrEqual(t, r.Year, 2023)
		assert.GreaterOrEqual(t, r.Population, 10000)
	}
}

func TestSyntheticService_DemographicYearFilter(t *testing.T) {
	records, err := syntheticFixture(1).Demographics(context.Background(), domain.DemographicQuery{
		Years: domain.YearRange{From: 2022, To: 2022},
	})
	require.NoError(t, err)

	require.Len(t, records, 6)
	for _, r := range records {
		assert.Equal(t, 2022, r.Year)
	}
}
