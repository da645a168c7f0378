// Package http provides http transport for the layoffs dashboard
package http

import (
	stdhttp "net/http"
	"strings"

	"layoffs/internal/core/i18n"
	"layoffs/internal/modkit/httpkit"
	perr "layoffs/internal/platform/errors"
	"layoffs/internal/services/api/layoffs/domain"
	svc "layoffs/internal/services/api/layoffs/service"
)

// Register mounts layoffs endpoints; fallback is used when neither the
// payload nor Accept-Language names a language
func Register(r httpkit.Router, s svc.Service, fallback i18n.Lang) {
	h := &handlers{svc: s, fallback: fallback.Or(i18n.DefaultLang)}

	// filtered cards
	httpkit.PostJSON[domain.RecordsInput](r, "/records", h.records)

	// chart series for one mode
	httpkit.PostJSON[domain.AggregateInput](r, "/aggregate", h.aggregate)

	// header counters and per year table
	httpkit.PostJSON[domain.TotalsInput](r, "/totals", h.totals)

	httpkit.Get(r, "/options", h.options)
	httpkit.Get(r, "/translations/{lang}", h.translations)
	httpkit.Get(r, "/dataset", h.dataset)
}

type handlers struct {
	svc      svc.Service
	fallback i18n.Lang
}

// lang resolves an explicit language or negotiates one from the request
func (h *handlers) lang(r *stdhttp.Request, raw string) (i18n.Lang, error) {
	if strings.TrimSpace(raw) == "" {
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			return i18n.Negotiate(accept), nil
		}
		return h.fallback, nil
	}
	l, err := i18n.ParseLang(raw)
	if err != nil {
		return "", perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "lang must be en or ro"), "lang")
	}
	return l, nil
}

// swagger:route POST /layoffs/records Layoffs layoffsRecords
// @Summary Filtered layoff records
// @Description Records matching the filter, newest first, localized for display
// @Tags Layoffs
// @Accept json
// @Produce json
// @Param payload body domain.RecordsInput true "Filter"
// @Success 200 {object} projection.CardsView "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /layoffs/records [post]
func (h *handlers) records(r *stdhttp.Request, in domain.RecordsInput) (any, error) {
	l, err := h.lang(r, in.Lang)
	if err != nil {
		return nil, err
	}
	return h.svc.Records(r.Context(), in, l)
}

// swagger:route POST /layoffs/aggregate Layoffs layoffsAggregate
// @Summary Chart series
// @Description Affected employees of the filtered records grouped by mode
// @Tags Layoffs
// @Accept json
// @Produce json
// @Param payload body domain.AggregateInput true "Filter and mode"
// @Success 200 {object} projection.ChartView "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /layoffs/aggregate [post]
func (h *handlers) aggregate(r *stdhttp.Request, in domain.AggregateInput) (any, error) {
	l, err := h.lang(r, in.Lang)
	if err != nil {
		return nil, err
	}
	return h.svc.Aggregate(r.Context(), in, l)
}

// swagger:route POST /layoffs/totals Layoffs layoffsTotals
// @Summary Confirmed and potential totals
// @Tags Layoffs
// @Accept json
// @Produce json
// @Param payload body domain.TotalsInput true "Scope"
// @Success 200 {object} projection.TotalsView "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /layoffs/totals [post]
func (h *handlers) totals(r *stdhttp.Request, in domain.TotalsInput) (any, error) {
	l, err := h.lang(r, in.Lang)
	if err != nil {
		return nil, err
	}
	return h.svc.Totals(r.Context(), in, l)
}

// swagger:route GET /layoffs/options Layoffs layoffsOptions
// @Summary Dropdown options
// @Tags Layoffs
// @Produce json
// @Param country query string false "Selected country" example(Romania)
// @Param lang query string false "Language" example(ro)
// @Success 200 {object} domain.OptionsView "ok"
// @Router /layoffs/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	l, err := h.lang(r, q.Get("lang"))
	if err != nil {
		return nil, err
	}
	return h.svc.Options(r.Context(), domain.OptionsInput{Country: q.Get("country"), Lang: l.String()}, l)
}

// swagger:route GET /layoffs/translations/{lang} Layoffs layoffsTranslations
// @Summary Translation table
// @Description Every key resolved for lang with the english fallback applied
// @Tags Layoffs
// @Produce json
// @Param lang path string true "Language" example(en)
// @Success 200 {object} domain.TranslationsView "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /layoffs/translations/{lang} [get]
func (h *handlers) translations(r *stdhttp.Request) (any, error) {
	l, err := h.lang(r, httpkit.Param(r, "lang"))
	if err != nil {
		return nil, err
	}
	return h.svc.Translations(r.Context(), l)
}

// swagger:route GET /layoffs/dataset Layoffs layoffsDataset
// @Summary Dataset load status
// @Tags Layoffs
// @Produce json
// @Success 200 {object} domain.DatasetStatus "ok"
// @Router /layoffs/dataset [get]
func (h *handlers) dataset(r *stdhttp.Request) (any, error) {
	return h.svc.Dataset(r.Context()), nil
}
