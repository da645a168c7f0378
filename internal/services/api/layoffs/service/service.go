// Package service contains the layoffs read workflows
package service

import (
	"context"

	"layoffs/internal/core/aggregate"
	"layoffs/internal/core/dataset"
	"layoffs/internal/core/filter"
	"layoffs/internal/core/gazetteer"
	"layoffs/internal/core/i18n"
	"layoffs/internal/core/layoff"
	"layoffs/internal/core/projection"
	"layoffs/internal/platform/metrics"
	"layoffs/internal/services/api/layoffs/domain"
)

// Service defines the layoffs service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the layoffs service over an immutable record store
type Svc struct {
	store   *dataset.Store
	engine  *filter.Engine
	places  *gazetteer.Gazetteer
	catalog *i18n.Catalog
	metrics *metrics.Registry
}

// New constructs the service; a nil catalog means the embedded one and a nil
// registry disables counters
func New(store *dataset.Store, cat *i18n.Catalog, reg *metrics.Registry) *Svc {
	if store == nil {
		panic("layoffs.Service requires a non nil dataset Store")
	}
	if cat == nil {
		cat = i18n.Default()
	}
	places := gazetteer.Default()
	return &Svc{
		store:   store,
		engine:  filter.New(places),
		places:  places,
		catalog: cat,
		metrics: reg,
	}
}

func (s *Svc) filtered(f domain.Filter) []layoff.Record {
	return s.engine.Apply(s.store.Records(), f.Criteria())
}

// Records returns the filtered cards, newest first
func (s *Svc) Records(_ context.Context, in domain.RecordsInput, lang i18n.Lang) (projection.CardsView, error) {
	recs := s.filtered(in.Filter)
	s.metrics.Query("records", nil)
	return projection.Cards(recs, lang, s.catalog), nil
}

// Aggregate groups the filtered subset by the requested mode
func (s *Svc) Aggregate(_ context.Context, in domain.AggregateInput, lang i18n.Lang) (projection.ChartView, error) {
	mode, err := aggregate.ParseMode(in.Mode)
	if err != nil {
		s.metrics.Query("aggregate", err)
		return projection.ChartView{}, err
	}
	series := aggregate.Aggregate(s.filtered(in.Filter), mode)
	s.metrics.Query("aggregate_"+mode.String(), nil)
	return projection.Chart(series, mode, lang, s.catalog), nil
}

// Totals splits confirmed from potential layoffs per year
func (s *Svc) Totals(_ context.Context, in domain.TotalsInput, lang i18n.Lang) (projection.TotalsView, error) {
	recs := s.store.Records()
	if in.Scope == domain.ScopeFiltered {
		recs = s.filtered(in.Filter)
	}
	s.metrics.Query("totals", nil)
	return projection.Totals(aggregate.Split(recs), aggregate.ConfirmedAffected(recs), lang, s.catalog), nil
}

// Options lists the dropdown values. Romania offers the full gazetteer,
// any other selection offers every location or country in the dataset.
func (s *Svc) Options(_ context.Context, in domain.OptionsInput, lang i18n.Lang) (domain.OptionsView, error) {
	all := s.store.Records()

	var locations []string
	if in.Country == layoff.Romania {
		locations = s.places.All()
	} else {
		locations = aggregate.Places(all)
	}

	s.metrics.Query("options", nil)
	return domain.OptionsView{
		Countries:  aggregate.Countries(all),
		Locations:  locations,
		Years:      aggregate.Years(all),
		Categories: aggregate.Categories(all),
		Modes:      aggregate.ModeNames(),
		Lang:       lang.String(),
	}, nil
}

// Translations returns the merged key table for lang
func (s *Svc) Translations(_ context.Context, lang i18n.Lang) (domain.TranslationsView, error) {
	return domain.TranslationsView{Lang: lang.String(), Table: s.catalog.Table(lang)}, nil
}

// Dataset reports the load state of the store
func (s *Svc) Dataset(context.Context) domain.DatasetStatus { return s.store.Status() }
