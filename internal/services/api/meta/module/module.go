// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "layoffs/internal/modkit"
	"layoffs/internal/modkit/httpkit"

	metahttp "layoffs/internal/services/api/meta/http"
)

// ServiceName is reported by health and service endpoints
const ServiceName = "layoffs-api"

// Ports lets meta report on state owned by other modules
type Ports struct {
	Dataset metahttp.DatasetReporter
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs a meta module; pass the dataset reporter with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName:  ServiceName,
		StartedAt:    time.Now(),
		ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	// assign only set seams so an absent backend reads as skipped
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		hd.PG = p
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}
	if deps.KV != nil {
		hd.KV = deps.KV
	}
	if p, ok := b.Ports.(Ports); ok {
		hd.Dataset = p.Dataset
	}

	m := &Module{}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { metahttp.Register(r, hd) })
	return m
}
