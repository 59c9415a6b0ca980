package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CountBy groups items by key and counts each group.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// DistinctCountBy groups items by key and counts distinct values (per
// distinct) within each group. Used for "members per organization" where a
// person can hold several roles in the same organization.
func DistinctCountBy[T any](items []T, key, distinct func(T) string) map[string]int {
	seen := make(map[string]map[string]struct{})
	for _, item := range items {
		k := key(item)
		if seen[k] == nil {
			seen[k] = make(map[string]struct{})
		}
		seen[k][distinct(item)] = struct{}{}
	}

	counts := make(map[string]int, len(seen))
	for k, values := range seen {
		counts[k] = len(values)
	}
	return counts
}

// SumBy groups items by key and sums each named value field within the
// group. The result maps group -> field -> sum. Money fields use decimal
// arithmetic so sums stay exact.
func SumBy[T any](
	items []T,
	key func(T) string,
	fields map[string]func(T) decimal.Decimal,
) map[string]map[string]decimal.Decimal {
	sums := make(map[string]map[string]decimal.Decimal)
	for _, item := range items {
		k := key(item)
		if sums[k] == nil {
			group := make(map[string]decimal.Decimal, len(fields))
			for name := range fields {
				group[name] = decimal.Zero
			}
			sums[k] = group
		}
		for name, value := range fields {
			sums[k][name] = sums[k][name].Add(value(item))
		}
	}
	return sums
}

// MonthKey buckets a timestamp into its UTC year-month, formatted YYYY-MM.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CountByMonth buckets items by month (per at) and counts each bucket.
// Feeds the monthly trend line.
func CountByMonth[T any](items []T, at func(T) time.Time) map[string]int {
	return CountBy(items, func(item T) string {
		return MonthKey(at(item))
	})
}

// SortedKeys returns the keys of m in ascending order. Aggregations report
// maps; stable output ordering is restored here.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeysByCountDesc returns the keys of m ordered by descending count, ties
// broken by ascending key. This is the "largest group first" presentation
// order used by the distribution views.
func KeysByCountDesc(m map[string]int) []string {
	keys := SortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return m[keys[i]] > m[keys[j]]
	})
	return keys
}
