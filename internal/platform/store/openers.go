package store

import (
	"cmp"
	"context"
	"fmt"
	"time"

	chx "layoffs/internal/platform/store/ch"
	"layoffs/internal/platform/store/pg"
	"layoffs/internal/platform/store/rds"
)

// openPG opens the pool, waits for the server and wraps it in the traced adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		Slow:     cfg.PG.SlowQuery,
	}, tracer)
	if err != nil {
		return nil, err
	}

	err = p.WaitReady(ctx, pg.Retry{
		Attempts: cmp.Or(max(cfg.PG.ConnectRetries, 0), 20),
		Timeout:  cmp.Or(max(cfg.PG.PingTimeout, 0), 3*time.Second),
		Backoff:  150 * time.Millisecond,
		Max:      2 * time.Second,
		OnRetry: func(attempt int, wait time.Duration, err error) {
			s.Log.Debug().Err(err).Int("attempt", attempt).Dur("backoff", wait).Msg("pg not ready")
		},
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Info().Str("app", cfg.AppName).Msg("postgres connected")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:         cfg.CH.URL,
		ClientName:  cfg.CH.ClientName,
		ClientTag:   cfg.CH.ClientTag,
		DialTimeout: cfg.CH.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	s.Log.Info().Str("client", cfg.CH.ClientName).Msg("clickhouse connected")
	return newCHAdapter(c), nil
}

func openRedis(ctx context.Context, cfg Config, s *Store) (KV, error) {
	c, err := rds.Open(ctx, rds.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis open: %w", err)
	}
	s.Log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("redis connected")
	return c, nil
}
