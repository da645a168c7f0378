package i18n

import (
	"strconv"
	"time"
)

// MonthYear renders an abbreviated month and year, "Jan 2024" or "ian. 2024"
func MonthYear(l Lang, t time.Time) string {
	loc := locale(l.Or(DefaultLang))
	return loc.MonthAbbreviated(t.Month()) + " " + strconv.Itoa(t.Year())
}

// LongDate renders a full date, "January 5, 2024" or "5 ianuarie 2024"
func LongDate(l Lang, t time.Time) string {
	return locale(l.Or(DefaultLang)).FmtDateLong(t)
}

// Number renders an integer with locale grouping, "1,234" or "1.234"
func Number(l Lang, n int) string {
	return locale(l.Or(DefaultLang)).FmtNumber(float64(n), 0)
}
