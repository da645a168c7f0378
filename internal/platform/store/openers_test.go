package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func closedPortPG() Config {
	return Config{PG: PGConfig{
		Enabled:        true,
		URL:            "postgres://u:p@127.0.0.1:1/layoffs?sslmode=disable",
		MaxConns:       1,
		ConnectRetries: 3,
		PingTimeout:    200 * time.Millisecond,
	}}
}

func TestOpenPG_CanceledParent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	txr, err := openPG(ctx, closedPortPG(), &Store{Log: zerolog.Nop()})
	if err == nil || txr != nil {
		t.Fatalf("expected error on canceled ctx, got %T %v", txr, err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("canceled ctx must fail fast")
	}
}

func TestOpenPG_GivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	start := time.Now()
	txr, err := openPG(context.Background(), closedPortPG(), &Store{Log: zerolog.Nop()})
	if err == nil || txr != nil {
		t.Fatalf("expected error after retries, got %T %v", txr, err)
	}
	// each failed attempt backs off 150ms, then 300ms, then 600ms
	if elapsed := time.Since(start); elapsed < 400*time.Millisecond {
		t.Fatalf("expected backoff between attempts, took %v", elapsed)
	}
}

func TestOpenCH_BadURL(t *testing.T) {
	t.Parallel()

	if _, err := openCH(context.Background(), Config{CH: CHConfig{Enabled: true}}, &Store{}); err == nil {
		t.Fatalf("expected error for empty clickhouse url")
	}
}
