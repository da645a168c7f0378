package modkit

import (
	"layoffs/internal/core/dataset"
	"layoffs/internal/modkit/repokit"
	"layoffs/internal/platform/config"
	"layoffs/internal/platform/logger"
	"layoffs/internal/platform/metrics"
	"layoffs/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// every backend is optional, consumers nil check
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	KV      store.KV
	Metrics *metrics.Registry
	Dataset *dataset.Store
}

// FromStore copies the backend seams of an opened store into d
func (d Deps) FromStore(st *store.Store) Deps {
	if st == nil {
		return d
	}
	if st.PG != nil {
		d.PG = st.PG
	}
	if st.CH != nil {
		d.CH = st.CH
	}
	if st.KV != nil {
		d.KV = st.KV
	}
	return d
}

// Logger returns d.Log or the named root logger when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(component)
}
