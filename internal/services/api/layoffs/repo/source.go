package repo

import (
	"strings"

	"layoffs/internal/core/dataset"
	"layoffs/internal/modkit/repokit"
	"layoffs/internal/platform/config"
	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
)

// Source kinds accepted by LAYOFFS_DATA_SOURCE
const (
	SourceEmbedded   = "embedded"
	SourceFile       = "file"
	SourcePG         = "pg"
	SourceClickhouse = "clickhouse"
)

// SourceConfig selects where the dataset loads from
type SourceConfig struct {
	Kind  string
	File  string
	Table string
}

// SourceConfigFrom reads SOURCE, FILE and TABLE from cfg, usually the LAYOFFS_DATA_ view
func SourceConfigFrom(cfg config.Conf) SourceConfig {
	return SourceConfig{
		Kind:  strings.ToLower(cfg.MayEnum("SOURCE", SourceEmbedded, SourceEmbedded, SourceFile, SourcePG, SourceClickhouse)),
		File:  cfg.MayString("FILE", "data/layoffs.json"),
		Table: cfg.MayString("TABLE", DefaultTable),
	}
}

// Loader builds the dataset loader for sc; database kinds need the matching store seam
func Loader(sc SourceConfig, st *store.Store) (dataset.Loader, error) {
	switch sc.Kind {
	case "", SourceEmbedded:
		return dataset.Embedded(), nil
	case SourceFile:
		return dataset.File(sc.File), nil
	case SourcePG:
		if st == nil || st.PG == nil {
			return nil, perr.Unavailablef("dataset source pg needs SERVICE_PGSQL_DBURL")
		}
		if err := CheckTable(sc.Table); err != nil {
			return nil, err
		}
		return Source("pg:"+sc.Table, repokit.MustBind(NewPG(sc.Table), st.PG)), nil
	case SourceClickhouse:
		if st == nil || st.CH == nil {
			return nil, perr.Unavailablef("dataset source clickhouse needs SERVICE_CLICKHOUSE_DBURL")
		}
		if err := CheckTable(sc.Table); err != nil {
			return nil, err
		}
		return Source("clickhouse:"+sc.Table, NewCH(st.CH, sc.Table)), nil
	default:
		return nil, perr.InvalidArgf("unknown dataset source %q", sc.Kind)
	}
}
