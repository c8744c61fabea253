package insights

import (
	"fmt"

	"github.com/nabilassungkar/MoodMelt/internal/dataset"
)

// TrendThreshold is the relative change between the first and last day of
// the series that counts as a real trend. Changes of exactly 10% or less in
// either direction read as stable.
const TrendThreshold = 0.10

// Recommendations evaluates the independent threshold rules over the
// already-computed aggregates and returns the overall business
// recommendation statements. rowCount is the number of cleaned rows; a zero
// rowCount short-circuits into a single upload prompt.
func Recommendations(rowCount int, sentiments, platforms, mediaTypes, locations CategoryAggregate, series []DailyEngagement) []string {
	if rowCount == 0 {
		return []string{"Upload your CSV file to get some juicy business recommendations!"}
	}

	var recs []string
	recs = append(recs, sentimentRecommendation(rowCount, sentiments))
	recs = append(recs, trendRecommendation(series))
	recs = append(recs, topPlatformRecommendation(platforms))
	recs = append(recs, topMediaTypeRecommendation(mediaTypes))
	recs = append(recs, topLocationRecommendation(locations))
	return recs
}

// sentimentRecommendation calls out a strict sentiment majority, or the
// mixed-bag statement when no single sentiment beats both others.
func sentimentRecommendation(rowCount int, sentiments CategoryAggregate) string {
	positive := sentiments.Count("Positive")
	negative := sentiments.Count("Negative")
	neutral := sentiments.Count("Neutral")

	switch {
	case positive > negative && positive > neutral:
		return "Overall, your **audience is loving your content!** Keep doing what you're doing and explore ways to amplify your most successful messages."
	case negative > positive && negative > neutral:
		return "There's a significant amount of **negative sentiment**. It's crucial to investigate the root causes and address concerns directly to improve brand perception."
	case neutral > positive && neutral > negative:
		return "A lot of **neutral sentiment** suggests your content might not be sparking strong reactions. Experiment with bolder messaging or more engaging formats to drive stronger opinions."
	case rowCount > 0:
		return "Sentiment is a mixed bag. Focus on understanding specific comments in each category to find actionable opportunities for improvement or replication of success."
	default:
		return "No clear sentiment data available to draw strong conclusions."
	}
}

// trendRecommendation compares the first and last day of the series. The
// 10% boundary is non-strict: exactly 10% up or down still reads as stable.
func trendRecommendation(series []DailyEngagement) string {
	if len(series) == 0 {
		return "No engagement data found for trend analysis."
	}
	if len(series) == 1 {
		return "Limited engagement data available. Upload more dates to observe trends and get more precise recommendations."
	}

	total := 0
	for _, day := range series {
		total += day.Engagements
	}
	if total <= 0 {
		return "Engagement data is available but shows no clear trend yet. Continue monitoring daily engagements for patterns."
	}

	first := float64(series[0].Engagements)
	last := float64(series[len(series)-1].Engagements)
	switch {
	case last > first*(1+TrendThreshold):
		return "Your **engagement is on a fantastic upward trajectory**! Double down on the strategies that are driving this growth, and consider investing more in these areas."
	case last < first*(1-TrendThreshold):
		return "**Engagement is declining**. It's time for a thorough content audit. Analyze what might have changed and what resonated previously to re-engage your audience."
	default:
		return "**Stable engagement** indicates a consistent audience. To drive further growth, explore new content pillars, target audiences, or platforms."
	}
}

func topPlatformRecommendation(platforms CategoryAggregate) string {
	top, ok := platforms.Top()
	switch {
	case ok && top.Value != dataset.UnknownValue && top.Total > 0:
		return fmt.Sprintf("**Focus on %s**, your highest-performing platform. Allocate more resources here for maximum impact, but also consider diversifying slowly.", top.Value)
	case ok && top.Value == dataset.UnknownValue:
		return "Platform data is missing for some entries. Ensure \"Platform\" column is correctly filled in your CSV for better insights."
	default:
		return "No platform data found. Please ensure your CSV includes a \"Platform\" column to identify key channels."
	}
}

func topMediaTypeRecommendation(mediaTypes CategoryAggregate) string {
	top, ok := mediaTypes.Top()
	switch {
	case ok && top.Value != dataset.UnknownMediaType && top.Total > 0:
		return fmt.Sprintf("Your **%s** content is a hit! Create more content in this format, and consider repurposing existing popular content into this media type.", top.Value)
	case ok && top.Value == dataset.UnknownMediaType:
		return "Media Type data is missing for some entries. Fill out the \"Media Type\" column in your CSV for clearer content insights."
	default:
		return "No media type data found. Please ensure your CSV includes a \"Media Type\" column to understand content preferences."
	}
}

func topLocationRecommendation(locations CategoryAggregate) string {
	top, ok := locations.Top()
	switch {
	case ok && top.Value != dataset.UnknownValue && top.Total > 0:
		return fmt.Sprintf("**Target %s** with localized campaigns or content. This region is a hot spot for your audience!", top.Value)
	case ok && top.Value == dataset.UnknownValue:
		return "Location data is missing for some entries. Ensure the \"Location\" column is populated in your CSV to understand geographic reach."
	default:
		return "No location data found. Please ensure your CSV includes a \"Location\" column to identify where your audience is blooming."
	}
}
