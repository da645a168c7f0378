// @title         Layoffs API
// @version       1.0
// @description   Filtered, aggregated and localized views over the layoff dataset

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"layoffs/internal/core/dataset"
	"layoffs/internal/platform/config"
	"layoffs/internal/platform/logger"
	"layoffs/internal/platform/metrics"
	phttp "layoffs/internal/platform/net/http"
	"layoffs/internal/platform/store"

	"layoffs/internal/services/api"
	layoffsrepo "layoffs/internal/services/api/layoffs/repo"
)

func main() {
	// YAML overlay first so every reader below sees it
	overlaid, cfgErr := config.LoadFileFromEnv()

	l := logger.Get()
	if cfgErr != nil {
		l.Fatal().Err(cfgErr).Msg("config file")
	}
	if len(overlaid) > 0 {
		l.Info().Strs("keys", overlaid).Msg("config file loaded")
	}

	root := config.New()
	apiCfg := root.Prefix("LAYOFFS_API_")
	dataCfg := root.Prefix("LAYOFFS_DATA_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFrom(root, "layoffs", "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var reg *metrics.Registry
	if apiCfg.MayBool("METRICS", true) {
		reg = metrics.New()
	}

	// a failed load still serves: empty views, error on /dataset, degraded readiness
	var ds *dataset.Store
	src := layoffsrepo.SourceConfigFrom(dataCfg)
	loader, err := layoffsrepo.Loader(src, st)
	if err != nil {
		l.Error().Err(err).Str("source", src.Kind).Msg("dataset source unusable")
		ds = dataset.Failed(src.Kind, err)
	} else {
		ds = dataset.Open(ctx, loader)
	}
	reg.DatasetLoaded(ds.Source(), ds.Len(), ds.Err())

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Dataset:        ds,
		Metrics:        reg,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	if err := srv.Listen(); err != nil {
		l.Fatal().Err(err).Str("addr", srv.Addr()).Msg("listen")
	}
	l.Info().Str("addr", srv.Addr()).Int("records", ds.Len()).Msg("layoffs api ready")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
