package domain

import "time"

// dateOf truncates a timestamp to its UTC calendar date.
// Range filtering is date-granular, matching how the dashboard's date
// pickers behave.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FilterByDateRange returns the items whose timestamp (per at) falls within
// [min, max], inclusive on both ends at date granularity. min == max selects
// exactly that day. Order is preserved; an empty input yields an empty
// output.
func FilterByDateRange[T any](items []T, at func(T) time.Time, minDate, maxDate time.Time) []T {
	lo := dateOf(minDate)
	hi := dateOf(maxDate)

	out := make([]T, 0, len(items))
	for _, item := range items {
		d := dateOf(at(item))
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterByCategory returns the items whose categorical field (per key) is a
// member of allowed, preserving order. An empty allowed set yields an empty
// result, not "all": "all selected" is a UI default, not a property of the
// filter primitive.
func FilterByCategory[T any](items []T, key func(T) string, allowed []string) []T {
	out := make([]T, 0, len(items))
	if len(allowed) == 0 {
		return out
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		allowedSet[v] = struct{}{}
	}

	for _, item := range items {
		if _, ok := allowedSet[key(item)]; ok {
			out = append(out, item)
		}
	}
	return out
}

// FilterByYearRange returns the items whose year (per year) falls within
// [minYear, maxYear], inclusive. Order is preserved.
func FilterByYearRange[T any](items []T, year func(T) int, minYear, maxYear int) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		y := year(item)
		if y < minYear || y > maxYear {
			continue
		}
		out = append(out, item)
	}
	return out
}
