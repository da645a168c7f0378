// Package api composes the layoffs HTTP API from its modules
package api

import (
	"layoffs/internal/core/dataset"
	"layoffs/internal/platform/config"
	"layoffs/internal/platform/logger"
	"layoffs/internal/platform/metrics"
	phttp "layoffs/internal/platform/net/http"
	"layoffs/internal/platform/store"

	"layoffs/internal/modkit"
	"layoffs/internal/modkit/httpkit"
	"layoffs/internal/modkit/module"
	"layoffs/internal/modkit/swaggerkit"

	layoffsdomain "layoffs/internal/services/api/layoffs/domain"
	layoffsmod "layoffs/internal/services/api/layoffs/module"
	metamod "layoffs/internal/services/api/meta/module"
	prefsmod "layoffs/internal/services/api/preferences/module"
)

// Options are the API options
type Options struct {
	// Config is the LAYOFFS_API_ view
	Config  config.Conf
	Store   *store.Store
	Dataset *dataset.Store
	Metrics *metrics.Registry
	Logger  *logger.Logger

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API onto r; r must not have routes yet
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	stack := httpkit.StackFromConfig(opt.Config)
	if opt.Metrics != nil {
		stack.Metrics = opt.Metrics.Middleware
	}
	r.Use(httpkit.RootStack(stack)...)

	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	deps := modkit.Deps{
		Log:     log,
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
		Dataset: opt.Dataset,
	}.FromStore(opt.Store)

	layoffs := layoffsmod.New(deps)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Dataset: module.MustPortsOf[layoffsdomain.DatasetPort](layoffs),
	}))

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Options{
		TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		modkit.MountAll(api, log, meta, layoffs, prefsmod.New(deps))
	})
}
