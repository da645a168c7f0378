// Package domain holds DTOs for the layoffs http and service contracts
package domain

import (
	"layoffs/internal/core/dataset"
	"layoffs/internal/core/filter"
)

// Filter mirrors the dashboard controls; empty fields do not constrain
type Filter struct {
	Country      string `json:"country,omitempty" validate:"max=100" example:"Romania"`
	Location     string `json:"location,omitempty" validate:"max=100" example:"Cluj"`
	Year         string `json:"year,omitempty" validate:"year" example:"2024"`
	Category     string `json:"category,omitempty" validate:"max=100" example:"Technology"`
	Compensation string `json:"compensation,omitempty" validate:"omitempty,oneof=with without" example:"with"`
	Search       string `json:"search,omitempty" validate:"max=200" example:"bank"`
}

// Criteria converts the wire filter into engine criteria.
// The validator has already restricted Compensation to known values.
func (f Filter) Criteria() filter.Criteria {
	comp, _ := filter.ParseCompensation(f.Compensation)
	return filter.Criteria{
		Country:      f.Country,
		Location:     f.Location,
		Year:         f.Year,
		Category:     f.Category,
		Compensation: comp,
		Search:       f.Search,
	}
}

// RecordsInput asks for the filtered card list
type RecordsInput struct {
	Filter Filter `json:"filter"`
	// empty means negotiate from Accept-Language
	Lang string `json:"lang,omitempty" validate:"omitempty,max=35" example:"en"`
}

// AggregateInput asks for one chart series
type AggregateInput struct {
	Filter Filter `json:"filter"`
	Mode   string `json:"mode" validate:"required,oneof=month year year_total category location company" example:"month"`
	Lang   string `json:"lang,omitempty" validate:"omitempty,max=35" example:"ro"`
}

// Totals scopes
const (
	ScopeAll      = "all"
	ScopeFiltered = "filtered"
)

// TotalsInput asks for the header counters and the per year table
type TotalsInput struct {
	Filter Filter `json:"filter"`
	Lang   string `json:"lang,omitempty" validate:"omitempty,max=35" example:"ro"`
	// all (default) counts the whole dataset, filtered counts the filtered subset
	Scope string `json:"scope,omitempty" validate:"omitempty,oneof=all filtered" example:"all"`
}

// OptionsInput selects the location list flavour
type OptionsInput struct {
	Country string
	Lang    string
}

// OptionsView feeds the dropdowns
type OptionsView struct {
	Countries  []string `json:"countries"`
	Locations  []string `json:"locations"`
	Years      []string `json:"years"`
	Categories []string `json:"categories"`
	Modes      []string `json:"modes"`
	Lang       string   `json:"lang" example:"ro"`
}

// TranslationsView is the merged key table for one language
type TranslationsView struct {
	Lang  string            `json:"lang" example:"en"`
	Table map[string]string `json:"table"`
}

// DatasetStatus is the load report of the record store
type DatasetStatus = dataset.Status
