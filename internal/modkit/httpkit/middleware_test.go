package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"layoffs/internal/platform/config"
	"layoffs/internal/platform/net/middleware"
)

func chain(h http.Handler, stack []middleware.Middleware) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestRootStack_HealthAndMetricsHook(t *testing.T) {
	seen := 0
	o := StackOptions{Metrics: func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen++
			next.ServeHTTP(w, r)
		})
	}}
	root := chain(http.NotFoundHandler(), RootStack(o))

	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health = %d", rec.Code)
	}
	if seen != 1 {
		t.Fatalf("metrics hook calls = %d", seen)
	}
}

func TestRootStack_RecoversPanics(t *testing.T) {
	root := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), RootStack(StackOptions{}))

	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestCommonStack_CORSAndNoCache(t *testing.T) {
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), CommonStack(StackOptions{Origins: []string{"https://dash.example"}, Credentials: true}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://dash.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example" {
		t.Fatalf("allow origin = %q", got)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache headers missing")
	}
}

func TestStackFromConfig(t *testing.T) {
	t.Setenv("LAYOFFS_API_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LAYOFFS_API_THROTTLE", "64")
	t.Setenv("LAYOFFS_API_TIMEOUT", "5s")

	o := StackFromConfig(config.New().Prefix("LAYOFFS_API_"))
	if len(o.Origins) != 2 || o.Origins[1] != "https://b.example" {
		t.Fatalf("origins = %v", o.Origins)
	}
	if o.Throttle != 64 || o.Timeout != 5*time.Second || !o.Credentials {
		t.Fatalf("opts = %+v", o)
	}
}
