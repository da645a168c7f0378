// Package dataset holds the loaded layoff records and the sources they load from
package dataset

import (
	"context"
	"time"

	"layoffs/internal/core/layoff"
	"layoffs/internal/platform/logger"
)

// Loader produces the full record set once
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]layoff.Record, error)
}

// Store is an immutable snapshot of the record set plus load metadata.
// The zero value is an empty store.
type Store struct {
	records  []layoff.Record
	source   string
	loadedAt time.Time
	err      error
}

// Status is the load metadata as reported over the wire
type Status struct {
	Source   string     `json:"source"`
	Count    int        `json:"count"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// New wraps records already in memory
func New(source string, records []layoff.Record) *Store {
	if records == nil {
		records = []layoff.Record{}
	}
	return &Store{records: records, source: source, loadedAt: time.Now().UTC()}
}

// Failed is an empty store remembering why loading failed
func Failed(source string, err error) *Store {
	return &Store{records: []layoff.Record{}, source: source, err: err}
}

// Open loads once; a failure is logged and yields an empty store carrying the error
func Open(ctx context.Context, l Loader) *Store {
	log := logger.Named("dataset")
	start := time.Now()

	recs, err := l.Load(ctx)
	if err != nil {
		log.Error().Err(err).Str("source", l.Name()).Msg("dataset load failed")
		return Failed(l.Name(), err)
	}

	s := New(l.Name(), recs)
	log.Info().
		Str("source", s.source).
		Int("records", len(s.records)).
		Dur("took", time.Since(start)).
		Msg("dataset loaded")
	return s
}

// Records returns the shared snapshot; callers must not modify it
func (s *Store) Records() []layoff.Record {
	if s == nil || s.records == nil {
		return []layoff.Record{}
	}
	return s.records
}

// Len is the number of records
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Source names the loader that filled the store
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Err is the load error, nil when loading succeeded
func (s *Store) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Status reports the load metadata
func (s *Store) Status() Status {
	st := Status{Source: s.Source(), Count: s.Len()}
	if s != nil && !s.loadedAt.IsZero() {
		at := s.loadedAt
		st.LoadedAt = &at
	}
	if err := s.Err(); err != nil {
		st.Error = err.Error()
	}
	return st
}
