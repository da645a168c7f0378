// Package httpkit is what modules import to register routes. Handlers return
// (value, error) and httpkit wraps the value in the response envelope.
package httpkit

import (
	"net/http"
	"strings"

	phttp "layoffs/internal/platform/net/http"
	"layoffs/internal/platform/net/middleware"
)

type (
	// Envelope documents response bodies in swagger annotations
	Envelope = phttp.Envelope

	// Router is the seam modules mount on
	Router = phttp.Router
)

// OK wraps data when a handler needs to adjust the response, e.g. set a cookie
func OK(data any) phttp.Response { return phttp.OK(data) }

// Param reads a path parameter such as {id}
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// Get registers h under GET; the request body is ignored
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Call(h))
}

// PostJSON registers h under POST with a decoded, validated T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.Bind(h))
}

// PutJSON registers h under PUT with a decoded, validated T
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.Bind(h))
}

// MountAPI scopes mw and the routes registered by mount under /api/{version}
func MountAPI(r Router, version string, mw []middleware.Middleware, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/ "), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI(r, "v1", mw, mount)
func MountAPIV1(r Router, mw []middleware.Middleware, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
