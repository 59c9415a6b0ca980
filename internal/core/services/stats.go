package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// Field names used in grouped sums.
const (
	fieldPlanned     = "planned"
	fieldExpenditure = "expenditure"
)

// StatsService computes the aggregated dashboard views by composing the
// category services with the domain aggregation primitives.
type StatsService struct {
	decisions driving.DecisionService
	members   driving.MemberService
	synthetic driving.SyntheticService
}

// NewStatsService creates a new stats service.
func NewStatsService(
	decisions driving.DecisionService,
	members driving.MemberService,
	synthetic driving.SyntheticService,
) *StatsService {
	return &StatsService{
		decisions: decisions,
		members:   members,
		synthetic: synthetic,
	}
}

// Decisions summarises the decisions category under q.
func (s *StatsService) Decisions(ctx context.Context, q domain.DecisionQuery) (*domain.DecisionStats, error) {
	all, _, err := s.decisions.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := s.decisions.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	byStatus := domain.CountBy(filtered, func(a domain.AgendaItem) string { return a.Status })
	stats := &domain.DecisionStats{
		TotalItems: len(all),
		Filtered:   len(filtered),
		ByStatus:   byStatus,
		ByMonth:    domain.CountByMonth(filtered, func(a domain.AgendaItem) time.Time { return a.Created }),
	}
	if keys := domain.KeysByCountDesc(byStatus); len(keys) > 0 {
		stats.TopStatus = keys[0]
	}
	return stats, nil
}

// Members summarises the members category under q.
func (s *StatsService) Members(ctx context.Context, q domain.MemberQuery) (*domain.MemberStats, error) {
	rows, err := s.members.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := s.members.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	name := func(r domain.MemberRow) string { return r.Name }
	org := func(r domain.MemberRow) string { return r.Organization }

	return &domain.MemberStats{
		TotalMembers:    len(domain.CountBy(rows, name)),
		FilteredMembers: len(domain.CountBy(filtered, name)),
		ByOrganization:  domain.DistinctCountBy(filtered, org, name),
	}, nil
}

// Budgets summarises the budgets category under q.
func (s *StatsService) Budgets(ctx context.Context, q domain.BudgetQuery) (*domain.BudgetStats, error) {
	lines, err := s.synthetic.Budgets(ctx, q)
	if err != nil {
		return nil, err
	}

	fields := map[string]func(domain.BudgetLine) decimal.Decimal{
		fieldPlanned:     func(b domain.BudgetLine) decimal.Decimal { return b.Planned },
		fieldExpenditure: func(b domain.BudgetLine) decimal.Decimal { return b.Expenditure },
	}

	stats := &domain.BudgetStats{
		TotalPlanned:     decimal.Zero,
		TotalExpenditure: decimal.Zero,
		Efficiency:       decimal.Zero,
		ByDepartment: domain.SumBy(lines,
			func(b domain.BudgetLine) string { return b.Department }, fields),
		ByYear: domain.SumBy(lines,
			func(b domain.BudgetLine) string { return strconv.Itoa(b.Year) }, fields),
	}
	for _, line := range lines {
		stats.TotalPlanned = stats.TotalPlanned.Add(line.Planned)
		stats.TotalExpenditure = stats.TotalExpenditure.Add(line.Expenditure)
	}
	if !stats.TotalPlanned.IsZero() {
		stats.Efficiency = stats.TotalExpenditure.
			Div(stats.TotalPlanned).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return stats, nil
}

// Projects summarises the projects category under q.
func (s *StatsService) Projects(ctx context.Context, q domain.ProjectQuery) (*domain.ProjectStats, error) {
	projects, err := s.synthetic.Projects(ctx, q)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectStats{
		Total:    len(projects),
		ByStatus: domain.CountBy(projects, func(p domain.Project) string { return p.Status.String() }),
	}, nil
}

// Services summarises the services category under q.
func (s *StatsService) Services(ctx context.Context, q domain.ServiceQuery) (*domain.ServiceStats, error) {
	usage, err := s.synthetic.Services(ctx, q)
	if err != nil {
		return nil, err
	}

	stats := &domain.ServiceStats{
		VarianceByType: make(map[string]int),
	}
	for _, u := range usage {
		stats.TotalPlanned += u.Planned
		stats.TotalActual += u.Actual
		stats.VarianceByType[u.ServiceType] += u.Variance()
	}
	return stats, nil
}

// Demographics summarises the demographics category under q.
func (s *StatsService) Demographics(ctx context.Context, q domain.DemographicQuery) (*domain.DemographicStats, error) {
	records, err := s.synthetic.Demographics(ctx, q)
	if err != nil {
		return nil, err
	}

	stats := &domain.DemographicStats{
		ByAgeGroup: make(map[string]int),
		ByYear:     make(map[string]int),
	}
	firstYear, lastYear := 0, 0
	for _, r := range records {
		stats.ByAgeGroup[r.AgeGroup] += r.Population
		stats.ByYear[strconv.Itoa(r.Year)] += r.Population
		stats.NetMigration += r.NetMigration()
		if firstYear == 0 || r.Year < firstYear {
			firstYear = r.Year
		}
		if r.Year > lastYear {
			lastYear = r.Year
		}
	}

	if firstYear != 0 && lastYear != firstYear {
		start := stats.ByYear[strconv.Itoa(firstYear)]
		end := stats.ByYear[strconv.Itoa(lastYear)]
		if start > 0 {
			stats.GrowthPercent = float64(end-start) / float64(start) * 100
		}
	}
	return stats, nil
}

// FormatMoney renders a euro amount for display. Kept here so the CLI and
// tests format identically.
func FormatMoney(d decimal.Decimal) string {
	return fmt.Sprintf("EUR %s", d.StringFixed(0))
}
