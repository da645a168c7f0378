// Package layoff defines the layoff event record and its derived accessors
package layoff

import (
	"cmp"
	"encoding/json"

	ptime "layoffs/internal/platform/time"
)

// DefaultSourceName labels legacy single-source records that carry no name
const DefaultSourceName = "Source"

// Other is the bucket used when a grouping key is missing
const Other = "Other"

// Romania is the country inferred for records located at the country level
const Romania = "Romania"

// Source is a citation link
type Source struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Compensation describes what affected employees were offered
type Compensation struct {
	SeverancePay     bool     `json:"severancePay"`
	SeveranceMonths  *float64 `json:"severanceMonths,omitempty"`
	BonusPackage     bool     `json:"bonusPackage"`
	BonusAmount      string   `json:"bonusAmount,omitempty"`
	BonusAmountRO    string   `json:"bonusAmountRO,omitempty"`
	Support          bool     `json:"support"`
	SupportDetails   string   `json:"supportDetails,omitempty"`
	SupportDetailsRO string   `json:"supportDetailsRO,omitempty"`
}

// Any reports whether at least one compensation flag is set
func (c *Compensation) Any() bool {
	return c != nil && (c.SeverancePay || c.BonusPackage || c.Support)
}

// Record is one layoff event, immutable once loaded
type Record struct {
	Company             string        `json:"company"`
	CompanyRO           string        `json:"companyRO,omitempty"`
	Date                string        `json:"date"`
	EmployeesAffected   int           `json:"employeesAffected"`
	EmployeesPotential  int           `json:"employeesPotential,omitempty"`
	IsPotential         bool          `json:"isPotential,omitempty"`
	Location            string        `json:"location,omitempty"`
	County              string        `json:"county,omitempty"`
	Country             string        `json:"country,omitempty"`
	Category            string        `json:"category,omitempty"`
	TotalEmployees      int           `json:"totalEmployees,omitempty"`
	TotalGroupEmployees int           `json:"totalGroupEmployees,omitempty"`
	Compensation        *Compensation `json:"compensation,omitempty"`
	Sources             []Source      `json:"sources,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	NotesRO             string        `json:"notesRO,omitempty"`
}

// UnmarshalJSON folds the legacy source/sourceName pair into Sources
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	var aux struct {
		plain
		Source     string `json:"source"`
		SourceName string `json:"sourceName"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if len(r.Sources) == 0 && aux.Source != "" {
		name := aux.SourceName
		if name == "" {
			name = DefaultSourceName
		}
		r.Sources = []Source{{URL: aux.Source, Name: name}}
	}
	if r.EmployeesAffected < 0 {
		r.EmployeesAffected = 0
	}
	if r.EmployeesPotential < 0 {
		r.EmployeesPotential = 0
	}
	return nil
}

// HasCompensation reports whether any compensation flag is set
func (r Record) HasCompensation() bool { return r.Compensation.Any() }

// Year returns the calendar year of Date, ok is false for malformed dates
func (r Record) Year() (int, bool) {
	t, ok := ptime.ParseDate(r.Date)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

// EffectiveCountry is Country, or Romania when the location names the country itself
func (r Record) EffectiveCountry() string {
	if r.Country != "" {
		return r.Country
	}
	if r.Location == Romania {
		return Romania
	}
	return ""
}

// Place is the location used for filtering, falling back to the county
func (r Record) Place() string { return cmp.Or(r.Location, r.County) }

// ChartPlace is the location bucket for charts, preferring the county
func (r Record) ChartPlace() string { return cmp.Or(r.County, r.Location, Other) }

// ChartCategory is the category bucket for charts
func (r Record) ChartCategory() string { return cmp.Or(r.Category, Other) }

// OptionPlace is the value offered in location pickers outside Romania
func (r Record) OptionPlace() string { return cmp.Or(r.Location, r.Country) }

// Total is affected plus potential, regardless of the potential flag
func (r Record) Total() int { return r.EmployeesAffected + r.EmployeesPotential }
