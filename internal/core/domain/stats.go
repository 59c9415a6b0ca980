package domain

import "github.com/shopspring/decimal"

// Aggregated views returned by the stats service. Maps are keyed by group
// value; use SortedKeys or KeysByCountDesc for stable presentation order.

// DecisionStats summarises the decisions category.
type DecisionStats struct {
	// TotalItems is the unfiltered agenda item count.
	TotalItems int

	// Filtered is the item count after applying the query.
	Filtered int

	// ByStatus is the status distribution of the filtered items.
	ByStatus map[string]int

	// ByMonth is the monthly trend of the filtered items, keyed YYYY-MM.
	ByMonth map[string]int

	// TopStatus is the most frequent status among the filtered items,
	// empty when there are none.
	TopStatus string
}

// MemberStats summarises the members category.
type MemberStats struct {
	// TotalMembers is the distinct member count before filtering.
	TotalMembers int

	// FilteredMembers is the distinct member count after filtering.
	FilteredMembers int

	// ByOrganization counts distinct members per organization.
	ByOrganization map[string]int
}

// BudgetStats summarises the budgets category.
type BudgetStats struct {
	// TotalPlanned and TotalExpenditure are euro sums over the selection.
	TotalPlanned     decimal.Decimal
	TotalExpenditure decimal.Decimal

	// Efficiency is expenditure over planned budget as a percentage,
	// rounded to two places. Zero when nothing was planned.
	Efficiency decimal.Decimal

	// ByDepartment and ByYear map group -> field ("planned",
	// "expenditure") -> sum.
	ByDepartment map[string]map[string]decimal.Decimal
	ByYear       map[string]map[string]decimal.Decimal
}

// ProjectStats summarises the projects category.
type ProjectStats struct {
	// Total is the project count after filtering.
	Total int

	// ByStatus is the status distribution.
	ByStatus map[string]int
}

// ServiceStats summarises the services category.
type ServiceStats struct {
	// TotalPlanned and TotalActual are usage sums over the selection.
	TotalPlanned int
	TotalActual  int

	// VarianceByType is actual minus planned usage per service type.
	VarianceByType map[string]int
}

// DemographicStats summarises the demographics category.
type DemographicStats struct {
	// GrowthPercent is the total population growth from the first to the
	// last selected year, in percent. Zero when undefined.
	GrowthPercent float64

	// NetMigration is migration in minus migration out over the selection.
	NetMigration int

	// ByAgeGroup sums population per age group.
	ByAgeGroup map[string]int

	// ByYear sums population per year, keyed by the numeric year string.
	ByYear map[string]int
}
