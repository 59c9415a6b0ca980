package domain

import (
	"strings"
	"time"
)

// NoResultStatus is the status assigned to agenda items without a result.
const NoResultStatus = "No result"

// DefaultExcludedStatuses are the statuses treated as "no action taken".
// "Kenntnis genommen" is the council phrasing for noted without action.
// The list is configuration; it is not assumed to be complete.
var DefaultExcludedStatuses = []string{
	NoResultStatus,
	"Kenntnis genommen",
}

// AgendaItem is a single line item considered by the council, optionally
// carrying a resolution.
type AgendaItem struct {
	// ID is the unique identifier for the agenda item.
	ID string

	// Name is the agenda item title.
	Name string

	// Created is when the item was created, normalised to UTC so that
	// items from exports with mixed offsets stay comparable.
	Created time.Time

	// Result is the raw resolution text. Nil means no result was recorded.
	Result *string

	// Status is the derived decision status. Never empty after
	// DeriveStatus; an absent or blank Result collapses to NoResultStatus.
	Status string
}

// DeriveStatus returns the decision status for the item: the trimmed
// Result, or NoResultStatus when Result is nil or blank.
func (a AgendaItem) DeriveStatus() string {
	if a.Result == nil {
		return NoResultStatus
	}
	s := strings.TrimSpace(*a.Result)
	if s == "" {
		return NoResultStatus
	}
	return s
}

// DeriveStatuses returns a copy of items with Status populated on every
// element.
func DeriveStatuses(items []AgendaItem) []AgendaItem {
	out := make([]AgendaItem, len(items))
	for i, item := range items {
		item.Status = item.DeriveStatus()
		out[i] = item
	}
	return out
}

// ActionableItems returns the items whose status is not in the excluded
// set, preserving order. Items must already carry a derived status.
// Excluded is typically configuration; nil falls back to
// DefaultExcludedStatuses.
func ActionableItems(items []AgendaItem, excluded []string) []AgendaItem {
	if excluded == nil {
		excluded = DefaultExcludedStatuses
	}
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, s := range excluded {
		excludedSet[s] = struct{}{}
	}

	out := make([]AgendaItem, 0, len(items))
	for _, item := range items {
		if _, skip := excludedSet[item.Status]; skip {
			continue
		}
		out = append(out, item)
	}
	return out
}
