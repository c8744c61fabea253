// Package insights derives the dashboard aggregates, the per-chart insight
// statements and the overall business recommendations from a cleaned table
// of records.
package insights

import (
	"sort"

	"github.com/nabilassungkar/MoodMelt/internal/dataset"
)

// TopLocationCount is how many locations the location chart ranks.
const TopLocationCount = 5

// CategoryCount is one ranked entry of a CategoryAggregate.
type CategoryCount struct {
	Value string `json:"value"`
	Total int    `json:"total"`
}

// CategoryAggregate maps category values to counts or summed engagements,
// ordered by descending magnitude. Ties keep the first-seen order of the
// underlying rows (stable sort contract).
type CategoryAggregate []CategoryCount

// Top returns the highest-ranked entry, or ok=false for an empty aggregate.
func (a CategoryAggregate) Top() (CategoryCount, bool) {
	if len(a) == 0 {
		return CategoryCount{}, false
	}
	return a[0], true
}

// Bottom returns the lowest-ranked entry, or ok=false for an empty aggregate.
func (a CategoryAggregate) Bottom() (CategoryCount, bool) {
	if len(a) == 0 {
		return CategoryCount{}, false
	}
	return a[len(a)-1], true
}

// Count returns the total recorded for a category value, or 0 if absent.
func (a CategoryAggregate) Count(value string) int {
	for _, c := range a {
		if c.Value == value {
			return c.Total
		}
	}
	return 0
}

// Sum returns the sum of all totals in the aggregate.
func (a CategoryAggregate) Sum() int {
	total := 0
	for _, c := range a {
		total += c.Total
	}
	return total
}

// Truncate returns the aggregate limited to its n highest-ranked entries.
func (a CategoryAggregate) Truncate(n int) CategoryAggregate {
	if len(a) <= n {
		return a
	}
	return a[:n]
}

// tally groups records by key and accumulates weight per group, then ranks
// the groups by descending total with first-appearance tie-breaking.
func tally(records []dataset.Record, key func(dataset.Record) string, weight func(dataset.Record) int) CategoryAggregate {
	totals := make(map[string]int, len(records))
	var order []string
	for _, r := range records {
		k := key(r)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += weight(r)
	}

	agg := make(CategoryAggregate, 0, len(order))
	for _, k := range order {
		agg = append(agg, CategoryCount{Value: k, Total: totals[k]})
	}
	sort.SliceStable(agg, func(i, j int) bool { return agg[i].Total > agg[j].Total })
	return agg
}

func one(dataset.Record) int { return 1 }

// CountBySentiment counts rows per sentiment value.
func CountBySentiment(records []dataset.Record) CategoryAggregate {
	return tally(records, func(r dataset.Record) string { return r.Sentiment }, one)
}

// CountByMediaType counts rows per media type.
func CountByMediaType(records []dataset.Record) CategoryAggregate {
	return tally(records, func(r dataset.Record) string { return r.MediaType }, one)
}

// CountByLocation counts rows per location.
func CountByLocation(records []dataset.Record) CategoryAggregate {
	return tally(records, func(r dataset.Record) string { return r.Location }, one)
}

// EngagementsByPlatform sums engagements per platform.
func EngagementsByPlatform(records []dataset.Record) CategoryAggregate {
	return tally(records, func(r dataset.Record) string { return r.Platform }, func(r dataset.Record) int { return r.Engagements })
}
