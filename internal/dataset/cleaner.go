package dataset

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when coercing a date value. The first
// match wins, so the unambiguous ISO forms come first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006.01.02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Clean converts raw rows into fixed-schema records. Each of the six fields
// is derived independently and a malformed value degrades to the column's
// default, so a single bad field never rejects a row. The output always has
// the same row count as the input; an empty input yields an empty table.
func Clean(rows []RawRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		var rec Record
		for _, col := range expectedColumns {
			value := row[col] // absent columns read as "", i.e. all-missing
			switch col {
			case "date":
				rec.Date = parseDate(value)
			case "engagements":
				rec.Engagements = parseEngagements(value)
			case "platform":
				rec.Platform = cleanText(value)
			case "sentiment":
				rec.Sentiment = cleanText(value)
			case "location":
				rec.Location = cleanText(value)
			case "mediatype":
				rec.MediaType = cleanText(value)
			}
		}
		// Keep the media type sentinel distinct from the generic default so
		// it cannot collide with a real "Unknown" category value.
		if rec.MediaType == UnknownValue {
			rec.MediaType = UnknownMediaType
		}
		records = append(records, rec)
	}
	return records
}

// parseDate attempts a calendar-date parse and truncates the result to
// midnight UTC so daily grouping keys on the calendar date alone. The zero
// time is returned when nothing matches.
func parseDate(value string) time.Time {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// parseEngagements coerces an engagement count to an integer. Fractional
// counts are truncated and anything unparseable becomes 0. Negative inputs
// pass through unchanged rather than being clamped.
func parseEngagements(value string) int {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func cleanText(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return UnknownValue
	}
	return s
}
