// Package projection shapes records and aggregates into display ready views.
// All locale dependent field selection lives here.
package projection

import (
	"math"
	"strconv"

	"layoffs/internal/core/i18n"
	"layoffs/internal/core/layoff"
	ptime "layoffs/internal/platform/time"
)

// Translator resolves catalog keys; *i18n.Catalog satisfies it
type Translator interface {
	T(l i18n.Lang, key string) string
}

// CompensationView is the localized compensation block of a card
type CompensationView struct {
	SeverancePay    bool     `json:"severance_pay"`
	SeveranceMonths *float64 `json:"severance_months,omitempty"`
	BonusPackage    bool     `json:"bonus_package"`
	BonusAmount     string   `json:"bonus_amount,omitempty"`
	Support         bool     `json:"support"`
	SupportDetails  string   `json:"support_details,omitempty"`
	Lines           []string `json:"lines"`
}

// RecordView is one record as a card or list row shows it
type RecordView struct {
	Company             string            `json:"company"`
	Date                string            `json:"date"`
	DateLabel           string            `json:"date_label"`
	EmployeesAffected   int               `json:"employees_affected"`
	AffectedLabel       string            `json:"affected_label"`
	EmployeesPotential  int               `json:"employees_potential,omitempty"`
	IsPotential         bool              `json:"is_potential"`
	Status              string            `json:"status"`
	Location            string            `json:"location"`
	County              string            `json:"county,omitempty"`
	Country             string            `json:"country,omitempty"`
	Category            string            `json:"category,omitempty"`
	TotalEmployees      int               `json:"total_employees,omitempty"`
	TotalGroupEmployees int               `json:"total_group_employees,omitempty"`
	LocalPercentage     *float64          `json:"local_percentage,omitempty"`
	GroupPercentage     *float64          `json:"group_percentage,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	Compensation        *CompensationView `json:"compensation,omitempty"`
	Sources             []layoff.Source   `json:"sources"`
}

// Percentage is affected/total*100 rounded to one decimal; ok is false when
// total is not positive
func Percentage(affected, total int) (float64, bool) {
	if total <= 0 {
		return 0, false
	}
	return math.Round(float64(affected)/float64(total)*1000) / 10, true
}

func percentPtr(affected, total int) *float64 {
	p, ok := Percentage(affected, total)
	if !ok {
		return nil
	}
	return &p
}

// localized prefers the Romanian variant when reading Romanian and it is set
func localized(l i18n.Lang, base, ro string) string {
	if l == i18n.RO && ro != "" {
		return ro
	}
	return base
}

// Record projects one record for lang
func Record(rec layoff.Record, l i18n.Lang, tr Translator) RecordView {
	l = l.Or(i18n.DefaultLang)

	v := RecordView{
		Company:             localized(l, rec.Company, rec.CompanyRO),
		Date:                rec.Date,
		DateLabel:           rec.Date,
		EmployeesAffected:   rec.EmployeesAffected,
		AffectedLabel:       i18n.Number(l, rec.EmployeesAffected),
		EmployeesPotential:  rec.EmployeesPotential,
		IsPotential:         rec.IsPotential,
		Location:            rec.Location,
		County:              rec.County,
		Country:             rec.Country,
		Category:            rec.Category,
		TotalEmployees:      rec.TotalEmployees,
		TotalGroupEmployees: rec.TotalGroupEmployees,
		LocalPercentage:     percentPtr(rec.EmployeesAffected, rec.TotalEmployees),
		GroupPercentage:     percentPtr(rec.EmployeesAffected, rec.TotalGroupEmployees),
		Notes:               localized(l, rec.Notes, rec.NotesRO),
		Sources:             rec.Sources,
	}
	if t, ok := ptime.ParseDate(rec.Date); ok {
		v.DateLabel = i18n.LongDate(l, t)
	}
	if rec.IsPotential {
		v.Status = tr.T(l, "potential")
	} else {
		v.Status = tr.T(l, "confirmed")
	}
	if v.Sources == nil {
		v.Sources = []layoff.Source{}
	}
	if rec.HasCompensation() {
		v.Compensation = compensation(rec.Compensation, l, tr)
	}
	return v
}

func compensation(c *layoff.Compensation, l i18n.Lang, tr Translator) *CompensationView {
	v := &CompensationView{
		SeverancePay:    c.SeverancePay,
		SeveranceMonths: c.SeveranceMonths,
		BonusPackage:    c.BonusPackage,
		BonusAmount:     localized(l, c.BonusAmount, c.BonusAmountRO),
		Support:         c.Support,
		SupportDetails:  localized(l, c.SupportDetails, c.SupportDetailsRO),
		Lines:           make([]string, 0, 3),
	}
	if c.SeverancePay {
		line := tr.T(l, "severancePay")
		if c.SeveranceMonths != nil && *c.SeveranceMonths != 0 {
			line += ": " + strconv.FormatFloat(*c.SeveranceMonths, 'f', -1, 64) + " " + tr.T(l, "months")
		}
		v.Lines = append(v.Lines, line)
	}
	if c.BonusPackage {
		line := tr.T(l, "bonusPackage")
		if v.BonusAmount != "" {
			line += ": " + v.BonusAmount
		}
		v.Lines = append(v.Lines, line)
	}
	if c.Support {
		v.Lines = append(v.Lines, tr.T(l, "support"))
	}
	return v
}
