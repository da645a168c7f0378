// Package logger owns the process zerolog logger. Configure it with LOG_LEVEL,
// LOG_FORMAT (console or json), LOG_SERVICE and LOG_CALLER; request scoped
// children come from C.
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"layoffs/internal/platform/config/raw"
)

// Logger is zerolog's logger; callers never import zerolog for the type
type Logger = zerolog.Logger

// Options shapes the root logger
type Options struct {
	Level   string
	Format  string
	Service string
	Caller  bool
	// Writer defaults to stdout
	Writer io.Writer
}

// FromEnv reads LOG_* through raw, since config itself logs
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:   env.Get("LEVEL", "info"),
		Format:  strings.ToLower(env.Get("FORMAT", "console")),
		Service: env.Get("SERVICE", "layoffs"),
		Caller:  env.GetBool("CALLER", false),
	}
}

// New builds a logger from opt without touching the process root.
// Unknown levels fall back to info.
func New(opt Options) Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go", bi.GoVersion)
	}
	if opt.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init sets the root logger; only the first call, explicit or through Get, counts
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root.Load()
}

// Named returns a root child tagged component=name
func Named(name string) *Logger {
	if name == "" {
		return Get()
	}
	l := Get().With().Str("component", name).Logger()
	return &l
}

type clientKey struct{}

// WithClientID makes C tag lines with the dashboard client id
func WithClientID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, clientKey{}, id)
}

// C returns a root child carrying the request id chi assigned and the client id, when present
func C(ctx context.Context) *Logger {
	b := Get().With()
	if id := chimw.GetReqID(ctx); id != "" {
		b = b.Str("request_id", id)
	}
	if id, _ := ctx.Value(clientKey{}).(string); id != "" {
		b = b.Str("client_id", id)
	}
	l := b.Logger()
	return &l
}
