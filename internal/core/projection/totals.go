package projection

import (
	"layoffs/internal/core/aggregate"
	"layoffs/internal/core/i18n"
)

// YearRow is one localized row of the yearly split
type YearRow struct {
	Year           string `json:"year"`
	Confirmed      int    `json:"confirmed"`
	ConfirmedLabel string `json:"confirmed_label"`
	Potential      int    `json:"potential"`
	PotentialLabel string `json:"potential_label"`
}

// Counter is a titled number
type Counter struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

// TotalsView carries the header counters
type TotalsView struct {
	Confirmed Counter   `json:"confirmed"`
	Potential Counter   `json:"potential"`
	Affected  Counter   `json:"affected"`
	Years     []YearRow `json:"years"`
}

func counter(l i18n.Lang, tr Translator, key string, n int) Counter {
	return Counter{Title: tr.T(l, key), Value: n, Label: i18n.Number(l, n)}
}

// Totals projects the confirmed/potential split and the confirmed affected sum
func Totals(split aggregate.YearSplit, confirmedAffected int, l i18n.Lang, tr Translator) TotalsView {
	l = l.Or(i18n.DefaultLang)

	v := TotalsView{
		Confirmed: counter(l, tr, "totalConfirmed", split.Confirmed),
		Potential: counter(l, tr, "totalPotential", split.Potential),
		Affected:  counter(l, tr, "totalAffected", confirmedAffected),
		Years:     make([]YearRow, 0, len(split.Years)),
	}
	for _, y := range split.Years {
		v.Years = append(v.Years, YearRow{
			Year:           y.Year,
			Confirmed:      y.Confirmed,
			ConfirmedLabel: i18n.Number(l, y.Confirmed),
			Potential:      y.Potential,
			PotentialLabel: i18n.Number(l, y.Potential),
		})
	}
	return v
}
