// Package report assembles the full dashboard report from a cleaned table
// and renders it as a PDF document.
package report

import (
	"github.com/nabilassungkar/MoodMelt/internal/dataset"
	"github.com/nabilassungkar/MoodMelt/internal/insights"
	"github.com/nabilassungkar/MoodMelt/internal/models"
)

// Build derives every aggregate, insight and recommendation from the
// cleaned records and assembles them into a report. The store assigns the
// ID and creation time when the report is saved.
func Build(fileName string, records []dataset.Record) models.Report {
	sentiments := insights.CountBySentiment(records)
	platforms := insights.EngagementsByPlatform(records)
	mediaTypes := insights.CountByMediaType(records)
	locations := insights.CountByLocation(records).Truncate(insights.TopLocationCount)
	daily := insights.DailyEngagements(records)

	rep := models.Report{
		FileName: fileName,
		RowCount: len(records),
		Records:  records,

		SentimentBreakdown:  sentiments,
		PlatformEngagements: platforms,
		MediaTypeMix:        mediaTypes,
		TopLocations:        locations,
		DailyEngagements:    daily,

		Insights: models.ReportInsights{
			Sentiment:  insights.SentimentInsights(sentiments),
			Engagement: insights.EngagementInsights(daily),
			Platform:   insights.PlatformInsights(platforms),
			MediaType:  insights.MediaTypeInsights(mediaTypes),
			Location:   insights.LocationInsights(locations),
		},
		Recommendations: insights.Recommendations(len(records), sentiments, platforms, mediaTypes, locations, daily),
	}

	if stats, ok := insights.Stats(daily); ok {
		rep.EngagementStats = &stats
	}
	return rep
}
