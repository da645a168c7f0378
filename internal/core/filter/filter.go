package filter

import (
	"strconv"
	"strings"

	"layoffs/internal/core/fold"
	"layoffs/internal/core/gazetteer"
	"layoffs/internal/core/layoff"
)

// Places answers whether a free form location names a known place
type Places interface {
	Matches(location string) bool
}

// Engine applies criteria using a gazetteer for country inference
type Engine struct {
	places Places
}

// New returns an Engine; a nil places uses the default Romanian gazetteer
func New(places Places) *Engine {
	if places == nil {
		places = gazetteer.Default()
	}
	return &Engine{places: places}
}

// Apply returns the records passing every set criterion, in input order
// records is never modified and the result is always a fresh slice
func (e *Engine) Apply(records []layoff.Record, c Criteria) []layoff.Record {
	c = c.Normalize()
	out := make([]layoff.Record, 0, len(records))
	for _, r := range records {
		if e.match(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether a single record passes c
func (e *Engine) Match(r layoff.Record, c Criteria) bool {
	return e.match(r, c.Normalize())
}

func (e *Engine) match(r layoff.Record, c Criteria) bool {
	if c.Country != "" {
		if r.EffectiveCountry() != c.Country && !e.places.Matches(r.Location) {
			return false
		}
	}

	if c.Location != "" && !fold.Either(r.Place(), c.Location) {
		return false
	}

	if c.Year != "" {
		y, ok := r.Year()
		if !ok || strconv.Itoa(y) != c.Year {
			return false
		}
	}

	if c.Category != "" && r.Category != c.Category {
		return false
	}

	switch c.Compensation {
	case CompensationWith:
		if !r.HasCompensation() {
			return false
		}
	case CompensationWithout:
		if r.HasCompensation() {
			return false
		}
	}

	if c.Search != "" && !strings.Contains(strings.ToLower(r.Company), c.Search) {
		return false
	}
	return true
}

var std = New(nil)

// Apply filters with the default gazetteer
func Apply(records []layoff.Record, c Criteria) []layoff.Record { return std.Apply(records, c) }

// Match checks one record with the default gazetteer
func Match(r layoff.Record, c Criteria) bool { return std.Match(r, c) }
