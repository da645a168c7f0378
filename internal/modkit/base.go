package modkit

import (
	"net/http"

	phttp "layoffs/internal/platform/net/http"
	pstrings "layoffs/internal/platform/strings"
)

// Base implements Module over a Built option set; modules embed it and
// override Ports when they export something
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes []func(phttp.Router)
}

// NewBase mounts own before any routes added through WithRegister
func NewBase(b Built, own func(phttp.Router)) Base {
	routes := make([]func(phttp.Router), 0, len(b.Register)+1)
	if own != nil {
		routes = append(routes, own)
	}
	routes = append(routes, b.Register...)
	return Base{name: b.Name, prefix: b.Prefix, mw: b.Mw, routes: routes}
}

// MountRoutes mounts the module routes under its prefix
func (b *Base) MountRoutes(r phttp.Router) {
	r.Route(pstrings.MustPrefix(b.prefix), func(rr phttp.Router) {
		if len(b.mw) > 0 {
			rr.Use(b.mw...)
		}
		for _, fn := range b.routes {
			fn(rr)
		}
	})
}

// Name returns the module name
func (b *Base) Name() string { return pstrings.MustString(b.name, "module name") }

// Prefix returns the module route prefix
func (b *Base) Prefix() string { return pstrings.MustPrefix(b.prefix) }

// Ports is nil unless the embedding module overrides it
func (b *Base) Ports() any { return nil }
