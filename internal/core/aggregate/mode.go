package aggregate

import (
	"strings"

	perr "layoffs/internal/platform/errors"
)

// Mode selects one grouping, ordering and truncation rule
type Mode uint8

const (
	// ByMonth buckets affected employees by the YYYY-MM prefix of the date
	ByMonth Mode = iota + 1
	// ByYear buckets affected employees by the YYYY prefix of the date
	ByYear
	// ByYearTotal buckets affected plus potential employees by calendar year
	ByYearTotal
	// ByCategory sums affected employees per category, top 10
	ByCategory
	// ByLocation sums affected employees per county or location, top 10
	ByLocation
	// ByCompanyTop lists the 10 largest single events
	ByCompanyTop
)

var modeNames = [...]string{
	ByMonth:      "month",
	ByYear:       "year",
	ByYearTotal:  "year_total",
	ByCategory:   "category",
	ByLocation:   "location",
	ByCompanyTop: "company",
}

// Modes lists every mode in declaration order
func Modes() []Mode {
	return []Mode{ByMonth, ByYear, ByYearTotal, ByCategory, ByLocation, ByCompanyTop}
}

// ModeNames lists the wire names of every mode
func ModeNames() []string {
	out := make([]string, 0, len(modeNames)-1)
	for _, m := range Modes() {
		out = append(out, m.String())
	}
	return out
}

// ParseMode maps a wire name to a Mode; unknown names are an error, never a default
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if modeNames[m] == name {
			return m, nil
		}
	}
	return 0, perr.InvalidArgf("unknown aggregation mode %q", s)
}

// String returns the wire name
func (m Mode) String() string {
	if m == 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is a declared mode
func (m Mode) Valid() bool { return m >= ByMonth && m <= ByCompanyTop }

// Timeline reports whether the mode is time bucketed
func (m Mode) Timeline() bool { return m == ByMonth || m == ByYear || m == ByYearTotal }

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, perr.InvalidArgf("invalid aggregation mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
