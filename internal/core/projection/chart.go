package projection

import (
	"fmt"
	"math"

	"layoffs/internal/core/aggregate"
	"layoffs/internal/core/i18n"
	ptime "layoffs/internal/platform/time"
)

// RGB is one gradient stop
type RGB struct{ R, G, B int }

var (
	gradientStart = RGB{R: 99, G: 102, B: 241}
	gradientEnd   = RGB{R: 147, G: 51, B: 234}
)

// ChartView is a series ready for a chart widget
type ChartView struct {
	Mode       aggregate.Mode `json:"mode"`
	Title      string         `json:"title"`
	Label      string         `json:"label"`
	Labels     []string       `json:"labels"`
	Values     []int          `json:"values"`
	Colors     []string       `json:"colors"`
	Total      int            `json:"total"`
	TotalLabel string         `json:"total_label"`
}

var chartTitles = map[aggregate.Mode]string{
	aggregate.ByMonth:      "timelineChart",
	aggregate.ByYear:       "timelineChart",
	aggregate.ByYearTotal:  "yearlyStats",
	aggregate.ByCategory:   "categoryChart",
	aggregate.ByLocation:   "locationChart",
	aggregate.ByCompanyTop: "companyChart",
}

// Chart projects a series produced for mode
func Chart(s aggregate.Series, mode aggregate.Mode, l i18n.Lang, tr Translator) ChartView {
	l = l.Or(i18n.DefaultLang)

	labels := s.Labels()
	if mode == aggregate.ByMonth {
		for i, key := range labels {
			if t, ok := ptime.ParseDate(key); ok {
				labels[i] = i18n.MonthYear(l, t)
			}
		}
	}

	v := ChartView{
		Mode:   mode,
		Label:  tr.T(l, "employeesAffected"),
		Labels: labels,
		Values: s.Values(),
		Total:  s.Sum(),
	}
	if key, ok := chartTitles[mode]; ok {
		v.Title = tr.T(l, key)
	}
	v.TotalLabel = i18n.Number(l, v.Total)

	stops := Gradient(len(s))
	v.Colors = make([]string, len(stops))
	for i, c := range stops {
		v.Colors[i] = c.RGBA(0.8)
	}
	return v
}

// Gradient interpolates n colors from indigo to purple; a single color is the start stop
func Gradient(n int) []RGB {
	out := make([]RGB, 0, max(n, 0))
	for i := 0; i < n; i++ {
		ratio := 0.0
		if n > 1 {
			ratio = float64(i) / float64(n-1)
		}
		out = append(out, RGB{
			R: lerp(gradientStart.R, gradientEnd.R, ratio),
			G: lerp(gradientStart.G, gradientEnd.G, ratio),
			B: lerp(gradientStart.B, gradientEnd.B, ratio),
		})
	}
	return out
}

func lerp(a, b int, ratio float64) int {
	return int(math.Round(float64(a) + float64(b-a)*ratio))
}

// RGBA renders a css rgba() color
func (c RGB) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}
