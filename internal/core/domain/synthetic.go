package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Synthetic collections stand in for data categories the open-data portal
// does not export yet (budgets, projects, services, demographics). They are
// demo scaffolding and sit behind the same query interfaces as real data so
// callers stay agnostic to provenance.

// BudgetLine is one department's budget for one financial year.
type BudgetLine struct {
	// Year is the financial year.
	Year int

	// Department is the spending department.
	Department string

	// Planned is the planned budget in euros.
	Planned decimal.Decimal

	// Expenditure is the actual expenditure in euros.
	Expenditure decimal.Decimal
}

// Efficiency returns expenditure as a percentage of the planned budget,
// rounded to two places. Zero when no budget was planned.
func (b BudgetLine) Efficiency() decimal.Decimal {
	if b.Planned.IsZero() {
		return decimal.Zero
	}
	return b.Expenditure.Div(b.Planned).Mul(decimal.NewFromInt(100)).Round(2)
}

// ProjectStatus describes the lifecycle state of a community project.
type ProjectStatus string

// Project statuses.
const (
	// ProjectOngoing is a project currently in progress.
	ProjectOngoing ProjectStatus = "Ongoing"

	// ProjectCompleted is a finished project.
	ProjectCompleted ProjectStatus = "Completed"

	// ProjectPlanned is a project not yet started.
	ProjectPlanned ProjectStatus = "Planned"
)

// IsValid returns true if the project status is recognised.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectOngoing, ProjectCompleted, ProjectPlanned:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ProjectStatus) String() string {
	return string(s)
}

// Project is a community project or initiative.
type Project struct {
	// ID is the unique identifier for the project.
	ID string

	// Name is the project title.
	Name string

	// Start is the project start date.
	Start time.Time

	// Status is the lifecycle state.
	Status ProjectStatus

	// Department is the responsible department.
	Department string

	// Progress is the completion percentage. Nil when not reported.
	Progress *int

	// Latitude and Longitude place the project on the city map.
	Latitude  float64
	Longitude float64
}

// ServiceUsage is planned versus actual usage of one public service in one
// year.
type ServiceUsage struct {
	// Year is the reporting year.
	Year int

	// ServiceType names the public service.
	ServiceType string

	// Planned is the planned usage count.
	Planned int

	// Actual is the recorded usage count.
	Actual int
}

// Variance returns actual minus planned usage. Positive means the service
// exceeded expectations.
func (s ServiceUsage) Variance() int {
	return s.Actual - s.Planned
}

// DemographicRecord is the population of one age group in one year.
type DemographicRecord struct {
	// Year is the reporting year.
	Year int

	// AgeGroup is the age bracket, e.g. "30-44".
	AgeGroup string

	// Population is the head count.
	Population int

	// MigrationIn and MigrationOut are the yearly migration counts.
	MigrationIn  int
	MigrationOut int
}

// NetMigration returns migration in minus migration out.
func (d DemographicRecord) NetMigration() int {
	return d.MigrationIn - d.MigrationOut
}
