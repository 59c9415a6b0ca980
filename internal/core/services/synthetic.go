package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
)

// Ensure SyntheticService implements the interface.
var _ driving.SyntheticService = (*SyntheticService)(nil)

// Generator value ranges, mirroring what the real exports would carry.
var (
	budgetDepartments = []string{
		"Administration", "Public Services", "Culture & Education",
		"Infrastructure", "Community Projects",
	}
	projectDepartments = []string{"Planning", "Public Works", "Community"}
	projectStatuses    = []domain.ProjectStatus{
		domain.ProjectOngoing, domain.ProjectCompleted, domain.ProjectPlanned,
	}
	serviceTypes = []string{"Housing", "Waste Management", "Education", "Culture", "Transport"}
	ageGroups    = []string{"0-14", "15-29", "30-44", "45-59", "60-74", "75+"}
)

// SyntheticService generates the demo collections for data categories the
// open-data portal does not export yet. Generation is deterministic for a
// given seed and happens once; queries filter the generated snapshots the
// same way the real categories are filtered.
type SyntheticService struct {
	seed int64

	once         sync.Once
	budgets      []domain.BudgetLine
	projects     []domain.Project
	services     []domain.ServiceUsage
	demographics []domain.DemographicRecord
}

// NewSyntheticService creates a new synthetic data service.
func NewSyntheticService(settings *domain.AppSettings) *SyntheticService {
	return &SyntheticService{seed: settings.Synthetic.Seed}
}

// generate builds every collection from the seed.
func (s *SyntheticService) generate() {
	rng := rand.New(rand.NewSource(s.seed)) //nolint:gosec // demo data, not crypto

	for year := 2021; year <= 2024; year++ {
		for _, dept := range budgetDepartments {
			s.budgets = append(s.budgets, domain.BudgetLine{
				Year:        year,
				Department:  dept,
				Planned:     decimal.NewFromInt(int64(100+rng.Intn(400)) * 1_000_000),
				Expenditure: decimal.NewFromInt(int64(80+rng.Intn(370)) * 1_000_000),
			})
		}
	}

	projectEpoch := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		// Seeded reader keeps the UUIDs reproducible too.
		id, _ := uuid.NewRandomFromReader(rng)
		p := domain.Project{
			ID:         id.String(),
			Name:       fmt.Sprintf("Project %d", i+1),
			Start:      projectEpoch.AddDate(0, 0, rng.Intn(701)),
			Status:     projectStatuses[rng.Intn(len(projectStatuses))],
			Department: projectDepartments[rng.Intn(len(projectDepartments))],
			Latitude:   49.38 + rng.Float64()*0.04,
			Longitude:  8.65 + rng.Float64()*0.07,
		}
		if rng.Intn(2) == 0 {
			progress := rng.Intn(101)
			p.Progress = &progress
		}
		s.projects = append(s.projects, p)
	}

	for year := 2021; year <= 2024; year++ {
		for _, svc := range serviceTypes {
			s.services = append(s.services, domain.ServiceUsage{
				Year:        year,
				ServiceType: svc,
				Planned:     1000 + rng.Intn(4000),
				Actual:      900 + rng.Intn(4300),
			})
		}
	}

	for year := 2018; year <= 2023; year++ {
		for _, group := range ageGroups {
			s.demographics = append(s.demographics, domain.DemographicRecord{
				Year:         year,
				AgeGroup:     group,
				Population:   10000 + rng.Intn(20000),
				MigrationIn:  500 + rng.Intn(1500),
				MigrationOut: 400 + rng.Intn(1400),
			})
		}
	}
}

// Budgets returns the budget lines matching q.
func (s *SyntheticService) Budgets(_ context.Context, q domain.BudgetQuery) ([]domain.BudgetLine, error) {
	s.once.Do(s.generate)

	lo, hi := yearBounds(q.Years)
	lines := domain.FilterByYearRange(s.budgets,
		func(b domain.BudgetLine) int { return b.Year }, lo, hi)
	if q.Departments != nil {
		lines = domain.FilterByCategory(lines,
			func(b domain.BudgetLine) string { return b.Department }, q.Departments)
	}
	return lines, nil
}

// Projects returns the community projects matching q.
func (s *SyntheticService) Projects(_ context.Context, q domain.ProjectQuery) ([]domain.Project, error) {
	s.once.Do(s.generate)

	projects := s.projects
	if q.Statuses != nil {
		projects = domain.FilterByCategory(projects,
			func(p domain.Project) string { return p.Status.String() }, q.Statuses)
	}
	return projects, nil
}

// Services returns the service usage records matching q.
func (s *SyntheticService) Services(_ context.Context, q domain.ServiceQuery) ([]domain.ServiceUsage, error) {
	s.once.Do(s.generate)

	lo, hi := yearBounds(q.Years)
	usage := domain.FilterByYearRange(s.services,
		func(u domain.ServiceUsage) int { return u.Year }, lo, hi)
	if q.Types != nil {
		usage = domain.FilterByCategory(usage,
			func(u domain.ServiceUsage) string { return u.ServiceType }, q.Types)
	}
	return usage, nil
}

// Demographics returns the demographic records matching q.
func (s *SyntheticService) Demographics(_ context.Context, q domain.DemographicQuery) ([]domain.DemographicRecord, error) {
	s.once.Do(s.generate)

	lo, hi := yearBounds(q.Years)
	return domain.FilterByYearRange(s.demographics,
		func(d domain.DemographicRecord) int { return d.Year }, lo, hi), nil
}

// yearBounds resolves a YearRange's open ends for FilterByYearRange.
func yearBounds(r domain.YearRange) (int, int) {
	lo, hi := r.From, r.To
	if lo == 0 {
		lo = -1 << 31
	}
	if hi == 0 {
		hi = 1<<31 - 1
	}
	return lo, hi
}
