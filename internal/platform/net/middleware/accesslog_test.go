package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"layoffs/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	cases := []struct {
		name   string
		opt    middleware.AccessLogOptions
		path   string
		status int
	}{
		{"plain", middleware.AccessLogOptions{}, "/x", http.StatusCreated},
		{"slow", middleware.AccessLogOptions{Slow: time.Nanosecond}, "/slow", http.StatusOK},
		{"server error", middleware.AccessLogOptions{}, "/boom", http.StatusInternalServerError},
		{"skipped", middleware.AccessLogOptions{Skip: []string{"/metrics"}}, "/metrics", http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = io.WriteString(w, "hi")
				_, _ = io.WriteString(w, "there")
			})
			rr := httptest.NewRecorder()
			middleware.AccessLogZerolog(c.opt)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.path, nil))

			if rr.Code != c.status {
				t.Fatalf("status = %d, want %d", rr.Code, c.status)
			}
			if rr.Body.String() != "hithere" {
				t.Fatalf("body = %q", rr.Body.String())
			}
		})
	}
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.Get("/translations/{lang}", func(w http.ResponseWriter, req *http.Request) {
		got = middleware.RoutePattern(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/translations/ro", nil))
	if got != "/translations/{lang}" {
		t.Fatalf("RoutePattern = %q", got)
	}

	if p := middleware.RoutePattern(httptest.NewRequest(http.MethodGet, "/", nil)); p != "unmatched" {
		t.Fatalf("RoutePattern without chi = %q", p)
	}
}
