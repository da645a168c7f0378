// Package module wires the layoffs dashboard into the API using modkit
package module

import (
	"layoffs/internal/core/dataset"
	"layoffs/internal/core/i18n"
	modkit "layoffs/internal/modkit"
	"layoffs/internal/modkit/httpkit"
	perr "layoffs/internal/platform/errors"
	layoffshttp "layoffs/internal/services/api/layoffs/http"
	layoffssvc "layoffs/internal/services/api/layoffs/service"
)

// Module implements the layoffs module
type Module struct {
	modkit.Base
	svc layoffssvc.Service
}

// New constructs the layoffs module over deps.Dataset. A missing dataset
// mounts an empty store that reports why.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("layoffs"), modkit.WithPrefix("/layoffs")}, opts...)...)

	st := deps.Dataset
	if st == nil {
		st = dataset.Failed("none", perr.Datasetf("no dataset configured"))
	}

	fallback := i18n.Lang(deps.Cfg.MayEnum("DEFAULT_LANG", string(i18n.DefaultLang), string(i18n.EN), string(i18n.RO)))

	m := &Module{svc: layoffssvc.New(st, i18n.Default(), deps.Metrics)}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		layoffshttp.Register(r, m.svc, fallback)
	})
	return m
}
