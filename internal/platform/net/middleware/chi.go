// Package middleware holds the http middleware the api stacks are built from.
// chi's middleware is re-exported here so modules never import chi directly.
package middleware

import (
	"net/http"
	"time"

	pstrings "layoffs/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware wraps a handler
type Middleware = func(http.Handler) http.Handler

// Stateless chi middleware
var (
	RequestID    Middleware = chimw.RequestID
	RealIP       Middleware = chimw.RealIP
	NoCache      Middleware = chimw.NoCache
	StripSlashes Middleware = chimw.StripSlashes
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// compressed is what the api actually serves; swagger assets stay as they are
var compressed = []string{"application/json", "application/problem+json"}

// CompressJSON gzips json responses at level
func CompressJSON(level int) Middleware { return chimw.Compress(level, compressed...) }

// Throttle caps in flight requests; limit <= 0 disables it
func Throttle(limit int) Middleware {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chimw.Throttle(limit)
}

// CORSOptions is the part of go-chi/cors the api configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	corsHeaders = []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"}
)

// CORS builds the cors handler. The request id is always exposed so the
// dashboard can quote it when reporting a failure.
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
