package aggregate

import (
	"sort"
	"strconv"

	"layoffs/internal/core/layoff"
)

// Years lists distinct calendar years, newest first
func Years(records []layoff.Record) []string {
	seen := make(map[int]struct{})
	ys := make([]int, 0)
	for _, r := range records {
		y, ok := r.Year()
		if !ok {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	out := make([]string, len(ys))
	for i, y := range ys {
		out[i] = strconv.Itoa(y)
	}
	return out
}

// Categories lists distinct non-empty categories, sorted
func Categories(records []layoff.Record) []string {
	return distinct(records, func(r layoff.Record) string { return r.Category })
}

// Countries lists distinct effective countries, sorted
func Countries(records []layoff.Record) []string {
	return distinct(records, layoff.Record.EffectiveCountry)
}

// Places lists distinct location-or-country values, sorted
func Places(records []layoff.Record) []string {
	return distinct(records, layoff.Record.OptionPlace)
}

func distinct(records []layoff.Record, key func(layoff.Record) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
