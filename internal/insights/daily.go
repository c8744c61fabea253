package insights

import (
	"sort"
	"time"

	"github.com/nabilassungkar/MoodMelt/internal/dataset"
)

// DailyEngagement is one point of the daily engagement series.
type DailyEngagement struct {
	Date        time.Time `json:"date"`
	Engagements int       `json:"engagements"`
}

// EngagementStats are the scalar statistics derived from a non-empty daily
// series. Ties for max and min go to the first date in ascending order.
type EngagementStats struct {
	Max     int       `json:"max"`
	MaxDate time.Time `json:"max_date"`
	Min     int       `json:"min"`
	MinDate time.Time `json:"min_date"`
	Total   int       `json:"total"`
	Average float64   `json:"average"`
}

// DailyEngagements groups records by calendar date, sums engagements per
// date and returns the series in ascending date order. Rows without a
// parseable date are excluded before grouping.
func DailyEngagements(records []dataset.Record) []DailyEngagement {
	totals := make(map[time.Time]int)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		totals[r.Date] += r.Engagements
	}

	series := make([]DailyEngagement, 0, len(totals))
	for date, total := range totals {
		series = append(series, DailyEngagement{Date: date, Engagements: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// Stats computes the derived statistics over a daily series. The second
// return value is false when the series is empty; callers must treat that
// as a "no data" signal instead of reading the zero stats.
func Stats(series []DailyEngagement) (EngagementStats, bool) {
	if len(series) == 0 {
		return EngagementStats{}, false
	}

	stats := EngagementStats{
		Max:     series[0].Engagements,
		MaxDate: series[0].Date,
		Min:     series[0].Engagements,
		MinDate: series[0].Date,
		Total:   series[0].Engagements,
	}
	for _, day := range series[1:] {
		stats.Total += day.Engagements
		// Strict comparisons keep the first ascending date on ties.
		if day.Engagements > stats.Max {
			stats.Max = day.Engagements
			stats.MaxDate = day.Date
		}
		if day.Engagements < stats.Min {
			stats.Min = day.Engagements
			stats.MinDate = day.Date
		}
	}
	stats.Average = float64(stats.Total) / float64(len(series))
	return stats, true
}
