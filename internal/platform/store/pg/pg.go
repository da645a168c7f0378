// Package pg owns the pgx pool behind the dataset table and the seed tool
package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool. A negative Slow disables slow marking,
// zero marks every statement slow.
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	Slow     time.Duration
}

// PG is the pool plus what the traced adapter needs to report on it
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool without dialing; the first query or WaitReady connects
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	if cfg.URL == "" {
		return nil, errors.New("pg: empty url")
	}
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, Slow: cfg.Slow}, nil
}

// Retry paces WaitReady
type Retry struct {
	Attempts int
	Timeout  time.Duration // per ping
	Backoff  time.Duration // first wait, doubled up to MaxBackoff
	Max      time.Duration // zero leaves the backoff uncapped

	// OnRetry sees every failed attempt that will be retried
	OnRetry func(attempt int, wait time.Duration, err error)
}

// WaitReady pings until the server answers, the attempts run out or ctx ends.
// Pings go to the pool directly so they stay out of the query trace.
func (p *PG) WaitReady(ctx context.Context, r Retry) error {
	wait := r.Backoff
	var err error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, r.Timeout)
		err = p.Pool.Ping(pctx)
		cancel()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == r.Attempts {
			break
		}
		if r.OnRetry != nil {
			r.OnRetry(attempt, wait, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if r.Max > 0 {
			wait = min(wait, r.Max)
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", r.Attempts, err)
}

// Close releases the pool; nil safe
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
