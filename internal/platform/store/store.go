// Package store opens the optional backends the api can run against and
// exposes each through a narrow seam the repos depend on.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"layoffs/internal/platform/logger"
)

// Store holds whichever backends were enabled; the rest stay nil.
// The zero value is usable and has no backends.
type Store struct {
	Log logger.Logger

	PG TxRunner   // dataset table and seed target
	CH Clickhouse // alternative dataset table
	KV KV         // dashboard preferences
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam: DDL, batched inserts and reads
type Clickhouse interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// KV is the key value seam; a missing key reports ok=false without error
type KV interface {
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Option adjusts a Store before any backend is dialed
type Option func(*Store) error

// WithLogger routes backend logs to log, tagged component=store
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log.With().Str("component", "store").Logger()
		return nil
	}
}

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		pgClient, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = pgClient
	}

	if cfg.CH.Enabled {
		chClient, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = chClient
	}

	if cfg.Redis.Enabled {
		kv, err := openRedis(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.KV = kv
	}

	return s, nil
}

type backend struct {
	name  string
	ping  func(context.Context) error
	close func() error
}

// backends lists the configured seams, redis first so it closes first
func (s *Store) backends() []backend {
	var out []backend
	if s.KV != nil {
		out = append(out, backend{"redis", s.KV.Ping, s.KV.Close})
	}
	if s.CH != nil {
		out = append(out, backend{"ch", s.CH.Ping, s.CH.Close})
	}
	if s.PG != nil {
		b := backend{name: "pg"}
		if p, ok := s.PG.(Pinger); ok {
			b.ping = p.Ping
		}
		if c, ok := s.PG.(interface{ Close() error }); ok {
			b.close = c.Close
		}
		out = append(out, b)
	}
	return out
}

// Guard pings every configured backend and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range s.backends() {
		if b.ping == nil {
			continue
		}
		if err := b.ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close shuts every backend down; nil store and nil backends are fine
func (s *Store) Close(context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, b := range s.backends() {
		if b.close == nil {
			continue
		}
		if err := b.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}
