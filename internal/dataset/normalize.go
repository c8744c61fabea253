// Package dataset turns raw CSV rows with human-edited headers into
// fixed-schema records ready for aggregation.
package dataset

import "strings"

// expectedColumns are the normalized header names the cleaner derives the
// record schema from. Columns missing from the source are treated as
// all-missing; extra columns are ignored.
var expectedColumns = []string{"date", "platform", "sentiment", "location", "engagements", "mediatype"}

var headerReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")

// NormalizeHeader reduces a header string to its canonical key: trimmed,
// lowercased, with spaces, hyphens and underscores removed. Two headers
// normalize equal iff they denote the same column, so "Media Type",
// "media_type" and "MEDIATYPE" all map to "mediatype". The function is
// idempotent and never fails.
func NormalizeHeader(name string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
