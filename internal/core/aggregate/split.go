package aggregate

import (
	"sort"
	"strconv"

	"layoffs/internal/core/layoff"
)

// YearTotals is one year's confirmed and potential counts
type YearTotals struct {
	Year      string `json:"year"`
	Confirmed int    `json:"confirmed"`
	Potential int    `json:"potential"`
}

// YearSplit holds the per year rows and the grand totals
type YearSplit struct {
	Years     []YearTotals `json:"years"`
	Confirmed int          `json:"confirmed"`
	Potential int          `json:"potential"`
}

// contribution splits one record into its confirmed and potential parts.
// A potential record moves its affected count to potential; employeesPotential
// always counts as potential, even on confirmed records.
func contribution(r layoff.Record) (confirmed, potential int) {
	if r.IsPotential {
		return 0, r.EmployeesAffected + r.EmployeesPotential
	}
	return r.EmployeesAffected, r.EmployeesPotential
}

// Split computes the confirmed/potential accounting used by the header totals.
// Grand totals cover every record; rows are ascending by year and omit records
// whose date has no calendar year.
func Split(records []layoff.Record) YearSplit {
	out := YearSplit{Years: []YearTotals{}}
	idx := make(map[int]int)
	for _, r := range records {
		c, p := contribution(r)
		out.Confirmed += c
		out.Potential += p

		y, ok := r.Year()
		if !ok {
			continue
		}
		i, seen := idx[y]
		if !seen {
			i = len(out.Years)
			idx[y] = i
			out.Years = append(out.Years, YearTotals{Year: strconv.Itoa(y)})
		}
		out.Years[i].Confirmed += c
		out.Years[i].Potential += p
	}
	sort.SliceStable(out.Years, func(i, j int) bool { return out.Years[i].Year < out.Years[j].Year })
	return out
}

// ConfirmedAffected sums affected employees over records not flagged potential
func ConfirmedAffected(records []layoff.Record) int {
	total := 0
	for _, r := range records {
		if !r.IsPotential {
			total += r.EmployeesAffected
		}
	}
	return total
}
