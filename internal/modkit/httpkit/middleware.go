package httpkit

import (
	"compress/flate"
	"time"

	"layoffs/internal/platform/config"
	"layoffs/internal/platform/net/middleware"
)

// StackOptions tunes the middleware stacks
type StackOptions struct {
	// Origins allowed by CORS; empty means none
	Origins     []string
	Credentials bool

	// Throttle caps in flight api requests, 0 disables it
	Throttle int
	Timeout  time.Duration
	SlowLog  time.Duration

	// Metrics observes every request when set
	Metrics middleware.Middleware
}

// StackFromConfig reads CORS_ORIGINS, CORS_CREDENTIALS, THROTTLE, TIMEOUT and SLOW_LOG
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Origins:     cfg.MayCSV("CORS_ORIGINS", nil),
		Credentials: cfg.MayBool("CORS_CREDENTIALS", true),
		Throttle:    cfg.MayInt("THROTTLE", 0),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowLog:     cfg.MayDuration("SLOW_LOG", 500*time.Millisecond),
	}
}

// RootStack runs for every request, docs and probes included
func RootStack(o StackOptions) []middleware.Middleware {
	stack := []middleware.Middleware{
		middleware.RequestID,
		middleware.RealIP,
		middleware.RecoverJSON,
	}
	if o.Metrics != nil {
		stack = append(stack, o.Metrics)
	}
	return append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: o.SlowLog,
			Skip: []string{"/metrics", "/health"},
		}),
		middleware.Heartbeat("/health"),
	)
}

// CommonStack is the per scope stack for the versioned api
func CommonStack(o StackOptions) []middleware.Middleware {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []middleware.Middleware{
		middleware.NoCache,
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:   o.Origins,
			AllowCredentials: o.Credentials,
			MaxAge:           300,
		}),
		middleware.CompressJSON(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Throttle(o.Throttle),
		middleware.Timeout(timeout),
	}
}
