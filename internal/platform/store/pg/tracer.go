package pg

import (
	"context"
	"strings"
	"time"

	"layoffs/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL     string
	Args    any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement to root at debug and above, whatever the process
// level, so SERVICE_PGSQL_LOG_SQL alone decides whether queries are logged
func Tracer(root logger.Logger) QueryTracer {
	return zlTracer{root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

// level is error for failures, warn for slow statements, info otherwise
func (ev QueryEvent) level() zerolog.Level {
	switch {
	case ev.Err != nil:
		return zerolog.ErrorLevel
	case ev.Slow:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

func (z zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	z.log.WithLevel(ev.level()).
		Float64("elapsed_ms", float64(ev.Elapsed.Microseconds())/1000).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// compact puts a multi line statement on one line
func compact(sql string) string { return strings.Join(strings.Fields(sql), " ") }
