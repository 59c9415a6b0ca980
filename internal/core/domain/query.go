package domain

import "time"

// Queries passed from the presentation layer into the core services.
// A nil categorical set means "no filter" (the UI's all-selected default);
// an empty non-nil set means "nothing selected" and yields no rows, matching
// the filter primitives.

// DecisionQuery selects agenda items.
type DecisionQuery struct {
	// From and To bound the created date, inclusive. Nil means unbounded.
	From *time.Time
	To   *time.Time

	// Statuses restricts the derived status. Nil means all.
	Statuses []string

	// ActionableOnly restricts to the actionable view.
	ActionableOnly bool
}

// MemberQuery selects joined membership rows.
type MemberQuery struct {
	// Organizations restricts the organization display name. Nil means all.
	Organizations []string
}

// YearRange bounds a reporting-year field, inclusive. The zero value on
// either end means unbounded.
type YearRange struct {
	From int
	To   int
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	if r.From != 0 && year < r.From {
		return false
	}
	if r.To != 0 && year > r.To {
		return false
	}
	return true
}

// BudgetQuery selects budget lines.
type BudgetQuery struct {
	Years YearRange

	// Departments restricts the spending department. Nil means all.
	Departments []string
}

// ProjectQuery selects community projects.
type ProjectQuery struct {
	// Statuses restricts the project status. Nil means all.
	Statuses []string
}

// ServiceQuery selects service usage records.
type ServiceQuery struct {
	Years YearRange

	// Types restricts the service type. Nil means all.
	Types []string
}

// DemographicQuery selects demographic records.
type DemographicQuery struct {
	Years YearRange
}
