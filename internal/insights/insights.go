package insights

import "fmt"

// Insight statements keep the original dashboard copy, including the
// **bold** marker convention the export layer reflows into font toggles.

const dateFormat = "2006-01-02"

// SentimentInsights builds the statements for the sentiment breakdown chart.
func SentimentInsights(sentiments CategoryAggregate) []string {
	total := sentiments.Sum()
	if total == 0 {
		return []string{"No sentiment data to analyze."}
	}

	var insights []string
	top, _ := sentiments.Top()
	topPercent := float64(top.Total) / float64(total) * 100
	insights = append(insights, fmt.Sprintf("**1.** Looks like a good vibe! `%s` is the most common sentiment, making up about **%.1f%%** of the buzz.", top.Value, topPercent))

	if len(sentiments) > 1 {
		bottom, _ := sentiments.Bottom()
		bottomPercent := float64(bottom.Total) / float64(total) * 100
		insights = append(insights, fmt.Sprintf("**2.** Keep an eye on `%s` sentiment, as it's the least frequent, representing only **%.1f%%**.", bottom.Value, bottomPercent))
	} else {
		insights = append(insights, "**2.** Only one sentiment category found. Consider diversifying content to get varied reactions.")
	}

	insights = append(insights, "**3.** The spread of sentiments gives you a snapshot of overall perception. Are you seeing more positive apples or sour lemons?")
	return insights
}

// EngagementInsights builds the statements for the engagement trend chart.
func EngagementInsights(series []DailyEngagement) []string {
	stats, ok := Stats(series)
	if !ok {
		return []string{"No engagement data to analyze."}
	}

	return []string{
		fmt.Sprintf("**1.** Wow! Your peak engagement happened on **%s** with a juicy **%d** engagements! What fresh content did you share then?", stats.MaxDate.Format(dateFormat), stats.Max),
		fmt.Sprintf("**2.** Keep an eye on **%s**, which saw the lowest engagements at **%d**. Time to sprinkle some new ideas?", stats.MinDate.Format(dateFormat), stats.Min),
		fmt.Sprintf("**3.** On average, you're gathering about **%.0f** engagements daily. Consistent growth is key, like a ripening fruit!", stats.Average),
	}
}

// PlatformInsights builds the statements for the platform engagement chart.
func PlatformInsights(platforms CategoryAggregate) []string {
	top, ok := platforms.Top()
	if !ok {
		return []string{"No platform engagement data to analyze."}
	}
	bottom, _ := platforms.Bottom()

	return []string{
		fmt.Sprintf("**1.** `%s` is your superstar platform, raking in a whopping **%d** engagements! Keep that content flowing there!", top.Value, top.Total),
		fmt.Sprintf("**2.** Time to sprinkle some love on `%s`, which currently has the fewest engagements at **%d**. Can you grow it like a new sprout?", bottom.Value, bottom.Total),
		"**3.** Observe the engagement spread across platforms. Are certain platforms serving up specific types of interactions better than others?",
	}
}

// MediaTypeInsights builds the statements for the media type mix chart.
func MediaTypeInsights(mediaTypes CategoryAggregate) []string {
	total := mediaTypes.Sum()
	if total == 0 {
		return []string{"No media type data to analyze."}
	}
	top, _ := mediaTypes.Top()
	bottom, _ := mediaTypes.Bottom()

	return []string{
		fmt.Sprintf("**1.** Your content recipe is heavy on `%s`, making up about **%.1f%%**! It's clearly a crowd-pleaser.", top.Value, float64(top.Total)/float64(total)*100),
		fmt.Sprintf("**2.** Perhaps try adding more `%s` to your mix, as it's currently the least used type at **%.1f%%**.", bottom.Value, float64(bottom.Total)/float64(total)*100),
		"**3.** Understanding your media mix helps optimize your content strategy. Are you using the right fruits for the right occasion?",
	}
}

// LocationInsights builds the statements for the top locations chart. The
// aggregate passed in is already truncated to the top entries.
func LocationInsights(locations CategoryAggregate) []string {
	top, ok := locations.Top()
	if !ok {
		return []string{"No location data to analyze."}
	}
	bottom, _ := locations.Bottom()

	return []string{
		fmt.Sprintf("**1.** Your biggest fan base is in `%s`, with a huge **%d** mentions! Time for a virtual fruit-picking party there!", top.Value, top.Total),
		fmt.Sprintf("**2.** Consider nurturing connections in `%s` (among the top %d), which has **%d** mentions.", bottom.Value, TopLocationCount, bottom.Total),
		"**3.** Knowing your top locations helps target your content like a perfectly aimed seed. Where can you make the most impact?",
	}
}
