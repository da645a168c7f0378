// Package aggregate derives grouped statistics from layoff records
// Pipeline per mode: group by key (first seen order) → sum → sort (stable) → truncate
package aggregate

import (
	"sort"
	"strconv"

	"layoffs/internal/core/layoff"
)

// TopN caps categorical series
const TopN = 10

// Point is one labelled value of a series
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Series is the universal aggregate shape
type Series []Point

// Labels returns the labels in order
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Label
	}
	return out
}

// Values returns the values in order
func (s Series) Values() []int {
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Sum adds every value
func (s Series) Sum() int {
	total := 0
	for _, p := range s {
		total += p.Value
	}
	return total
}

type ordering uint8

const (
	keyAscending ordering = iota
	valueDescending
)

type rule struct {
	key       func(layoff.Record) (string, bool)
	value     func(layoff.Record) int
	perRecord bool
	order     ordering
	limit     int
}

func affected(r layoff.Record) int { return r.EmployeesAffected }

func prefix(n int) func(layoff.Record) (string, bool) {
	return func(r layoff.Record) (string, bool) {
		if len(r.Date) < n {
			return r.Date, true
		}
		return r.Date[:n], true
	}
}

// calendarYear skips records whose date does not parse
func calendarYear(r layoff.Record) (string, bool) {
	y, ok := r.Year()
	if !ok {
		return "", false
	}
	return strconv.Itoa(y), true
}

func always(f func(layoff.Record) string) func(layoff.Record) (string, bool) {
	return func(r layoff.Record) (string, bool) { return f(r), true }
}

func company(r layoff.Record) string { return r.Company }

var rules = map[Mode]rule{
	ByMonth:      {key: prefix(7), value: affected, order: keyAscending},
	ByYear:       {key: prefix(4), value: affected, order: keyAscending},
	ByYearTotal:  {key: calendarYear, value: layoff.Record.Total, order: keyAscending},
	ByCategory:   {key: always(layoff.Record.ChartCategory), value: affected, order: valueDescending, limit: TopN},
	ByLocation:   {key: always(layoff.Record.ChartPlace), value: affected, order: valueDescending, limit: TopN},
	ByCompanyTop: {key: always(company), value: affected, perRecord: true, order: valueDescending, limit: TopN},
}

// Aggregate groups records per the mode rule; an invalid mode yields an empty series
func Aggregate(records []layoff.Record, m Mode) Series {
	r, ok := rules[m]
	if !ok {
		return Series{}
	}

	var pts Series
	if r.perRecord {
		pts = make(Series, 0, len(records))
		for _, rec := range records {
			label, _ := r.key(rec)
			pts = append(pts, Point{Label: label, Value: r.value(rec)})
		}
	} else {
		pts = group(records, r.key, r.value)
	}

	switch r.order {
	case keyAscending:
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Label < pts[j].Label })
	case valueDescending:
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Value > pts[j].Value })
	}

	if r.limit > 0 && len(pts) > r.limit {
		pts = pts[:r.limit]
	}
	return pts
}

// group sums values per key keeping first seen key order
func group(records []layoff.Record, key func(layoff.Record) (string, bool), value func(layoff.Record) int) Series {
	idx := make(map[string]int)
	out := make(Series, 0)
	for _, rec := range records {
		k, ok := key(rec)
		if !ok {
			continue
		}
		i, seen := idx[k]
		if !seen {
			i = len(out)
			idx[k] = i
			out = append(out, Point{Label: k})
		}
		out[i].Value += value(rec)
	}
	return out
}
