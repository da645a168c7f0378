// Package time parses the loose date strings found in layoff records
package time

import (
	"strings"
	"time"
)

// ISODate is the calendar date layout used across datasets
const ISODate = "2006-01-02"

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	ISODate,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
	"2006",
}

// ParseDate parses an ISO date (or a date-time, year-month or year prefix) as UTC
// ok is false for empty or malformed input
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v.UTC(), true
		}
	}
	return time.Time{}, false
}
