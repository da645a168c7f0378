// Package filter selects layoff records matching a set of criteria
package filter

import (
	"strings"

	perr "layoffs/internal/platform/errors"
)

// Compensation selects records by whether any compensation was offered
type Compensation uint8

const (
	// CompensationAny disables the compensation criterion
	CompensationAny Compensation = iota
	// CompensationWith keeps records offering severance, bonus or support
	CompensationWith
	// CompensationWithout keeps records offering none of them
	CompensationWithout
)

// ParseCompensation maps "", "with" and "without"
func ParseCompensation(s string) (Compensation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CompensationAny, nil
	case "with":
		return CompensationWith, nil
	case "without":
		return CompensationWithout, nil
	default:
		return CompensationAny, perr.InvalidArgf("unknown compensation filter %q", s)
	}
}

// String returns the wire name
func (c Compensation) String() string {
	switch c {
	case CompensationWith:
		return "with"
	case CompensationWithout:
		return "without"
	default:
		return ""
	}
}

// Criteria is the ephemeral filter state; empty fields do not constrain
type Criteria struct {
	Country      string
	Location     string
	Year         string
	Category     string
	Compensation Compensation
	Search       string
}

// IsZero reports whether no criterion is set
func (c Criteria) IsZero() bool {
	return c.Country == "" && c.Location == "" && c.Year == "" && c.Category == "" &&
		c.Compensation == CompensationAny && strings.TrimSpace(c.Search) == ""
}

// Normalize returns c with the search term trimmed and lowercased
func (c Criteria) Normalize() Criteria {
	c.Search = strings.ToLower(strings.TrimSpace(c.Search))
	return c
}
