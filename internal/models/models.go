package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nabilassungkar/MoodMelt/internal/dataset"
	"github.com/nabilassungkar/MoodMelt/internal/insights"
)

// Report is the full structured output of one processed upload: the cleaned
// table, the four category aggregates, the daily engagement series and the
// templated insight and recommendation statements.
type Report struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
	RowCount  int       `json:"row_count"`

	Records []dataset.Record `json:"records"`

	SentimentBreakdown  insights.CategoryAggregate `json:"sentiment_breakdown"`
	PlatformEngagements insights.CategoryAggregate `json:"platform_engagements"`
	MediaTypeMix        insights.CategoryAggregate `json:"media_type_mix"`
	TopLocations        insights.CategoryAggregate `json:"top_locations"`

	DailyEngagements []insights.DailyEngagement `json:"daily_engagements"`
	// EngagementStats is nil when no row carried a parseable date.
	EngagementStats *insights.EngagementStats `json:"engagement_stats,omitempty"`

	Insights        ReportInsights `json:"insights"`
	Recommendations []string       `json:"recommendations"`
}

// ReportInsights groups the per-chart insight statements. Statements may
// contain the **bold** marker convention, which consumers must preserve.
type ReportInsights struct {
	Sentiment  []string `json:"sentiment"`
	Engagement []string `json:"engagement"`
	Platform   []string `json:"platform"`
	MediaType  []string `json:"media_type"`
	Location   []string `json:"location"`
}

// ReportSummary is the listing view of a stored report.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
	RowCount  int       `json:"row_count"`
}

// Summary returns the listing view of the report.
func (r Report) Summary() ReportSummary {
	return ReportSummary{
		ID:        r.ID,
		FileName:  r.FileName,
		CreatedAt: r.CreatedAt,
		RowCount:  r.RowCount,
	}
}
