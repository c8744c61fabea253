package dataset

import "time"

// Default values used when a source field is absent or unparseable.
// MediaType gets its own sentinel so it cannot collide with a genuine
// "Unknown" category coming from another column.
const (
	UnknownValue     = "Unknown"
	UnknownMediaType = "Unknown Media Type"
)

// Record is a single cleaned row of social-media activity. Every field is
// always populated: malformed or missing source values are replaced by the
// column's default instead of dropping the row. The zero time.Time marks a
// missing or unparseable date.
type Record struct {
	Date        time.Time `json:"date"`
	Platform    string    `json:"platform"`
	Sentiment   string    `json:"sentiment"`
	Location    string    `json:"location"`
	Engagements int       `json:"engagements"`
	MediaType   string    `json:"media_type"`
}

// HasDate reports whether the record carries a parseable calendar date.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}
