package domain

import (
	"context"

	"layoffs/internal/core/i18n"
	"layoffs/internal/core/projection"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Records(ctx context.Context, in RecordsInput, lang i18n.Lang) (projection.CardsView, error)
	Aggregate(ctx context.Context, in AggregateInput, lang i18n.Lang) (projection.ChartView, error)
	Totals(ctx context.Context, in TotalsInput, lang i18n.Lang) (projection.TotalsView, error)
	Options(ctx context.Context, in OptionsInput, lang i18n.Lang) (OptionsView, error)
	Translations(ctx context.Context, lang i18n.Lang) (TranslationsView, error)
	DatasetPort
}

// DatasetPort reports the state of the loaded dataset
type DatasetPort interface {
	Dataset(ctx context.Context) DatasetStatus
}
