// Package module wires client preferences into the API using modkit
package module

import (
	"layoffs/internal/core/i18n"
	modkit "layoffs/internal/modkit"
	"layoffs/internal/modkit/httpkit"
	prefhttp "layoffs/internal/services/api/preferences/http"
	prefrepo "layoffs/internal/services/api/preferences/repo"
	prefsvc "layoffs/internal/services/api/preferences/service"
)

// Module implements the preferences module
type Module struct {
	modkit.Base
}

// New constructs the preferences module. Preferences live in redis when the
// KV seam is set and in process memory otherwise.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := deps.Cfg
	secure := cfg.MayBool("COOKIE_SECURE", false)

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("preferences"),
		modkit.WithPrefix("/preferences"),
		modkit.WithMiddlewares(prefhttp.ClientCookie(secure)),
	}, opts...)...)

	var r prefrepo.Repo
	if deps.KV != nil {
		r = prefrepo.NewKV(deps.KV, cfg.MayDuration("PREFERENCE_TTL", prefrepo.DefaultTTL))
	} else {
		r = prefrepo.NewMemory()
		deps.Logger("preferences").Info().Msg("redis not configured, preferences kept in memory")
	}

	fallback := i18n.Lang(cfg.MayEnum("DEFAULT_LANG", string(i18n.DefaultLang), string(i18n.EN), string(i18n.RO)))
	s := prefsvc.New(r, fallback)

	m := &Module{}
	m.Base = modkit.NewBase(b, func(rr httpkit.Router) { prefhttp.Register(rr, s) })
	return m
}
