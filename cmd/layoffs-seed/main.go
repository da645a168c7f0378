// Command layoffs-seed validates a layoffs document and loads it into postgres or clickhouse
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"layoffs/internal/core/aggregate"
	"layoffs/internal/core/dataset"
	"layoffs/internal/core/layoff"
	"layoffs/internal/modkit/repokit"
	"layoffs/internal/platform/config"
	"layoffs/internal/platform/logger"
	"layoffs/internal/platform/store"

	layoffsrepo "layoffs/internal/services/api/layoffs/repo"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		fFile   = flag.String("file", "", "layoffs JSON document; empty seeds the bundled dataset")
		fTarget = flag.String("target", layoffsrepo.SourcePG, "destination: pg | clickhouse")
		fTable  = flag.String("table", layoffsrepo.DefaultTable, "destination table")
		fCreate = flag.Bool("create", false, "create the table when missing")
		fDry    = flag.Bool("dry-run", false, "validate and summarize without writing")
	)
	flag.Parse()

	if _, err := config.LoadFileFromEnv(); err != nil {
		must(err)
	}
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := dataset.Embedded()
	if *fFile != "" {
		src = dataset.File(*fFile)
	}
	recs, err := src.Load(ctx)
	must(err)
	summarize(src.Name(), recs)

	if *fDry {
		return
	}
	must(layoffsrepo.CheckTable(*fTable))

	cfg := store.ConfigFrom(config.New(), "layoffs", "seed")
	switch *fTarget {
	case layoffsrepo.SourcePG:
		cfg.CH.Enabled = false
	case layoffsrepo.SourceClickhouse:
		cfg.PG.Enabled = false
	default:
		must(fmt.Errorf("unknown target %q", *fTarget))
	}
	cfg.Redis.Enabled = false

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	must(err)
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	var r layoffsrepo.Repo
	if *fTarget == layoffsrepo.SourcePG {
		if st.PG == nil {
			must(fmt.Errorf("pg target needs SERVICE_PGSQL_DBURL"))
		}
		r = repokit.MustBind(layoffsrepo.NewPG(*fTable), st.PG)
	} else {
		if st.CH == nil {
			must(fmt.Errorf("clickhouse target needs SERVICE_CLICKHOUSE_DBURL"))
		}
		r = layoffsrepo.NewCH(st.CH, *fTable)
	}

	if *fCreate {
		must(r.Migrate(ctx))
	}
	n, err := r.Replace(ctx, recs)
	must(err)
	l.Info().Str("target", *fTarget).Str("table", *fTable).Int("rows", n).Msg("seeded")
}

func summarize(source string, recs []layoff.Record) {
	split := aggregate.Split(recs)
	fmt.Printf("%s: %d records\n", source, len(recs))
	for _, y := range split.Years {
		fmt.Printf("  %s  confirmed=%d potential=%d\n", y.Year, y.Confirmed, y.Potential)
	}
	fmt.Printf("  total confirmed=%d potential=%d\n", split.Confirmed, split.Potential)
}
