package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T, r *Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	b, _ := io.ReadAll(rec.Body)
	return string(b)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	reg := New()
	m := chi.NewRouter()
	m.Use(reg.Middleware)
	m.Get("/api/v1/translations/{lang}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, p := range []string{"/api/v1/translations/en", "/api/v1/translations/ro"} {
		m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	out := scrape(t, reg)
	want := `layoffs_http_requests_total{method="GET",route="/api/v1/translations/{lang}",status="418"} 2`
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in\n%s", want, out)
	}
	if !strings.Contains(out, "layoffs_http_request_duration_seconds_count") {
		t.Fatalf("latency histogram missing")
	}
}

func TestMiddleware_DefaultStatusAndUnmatched(t *testing.T) {
	reg := New()
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	out := scrape(t, reg)
	want := `layoffs_http_requests_total{method="POST",route="unmatched",status="200"} 1`
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in\n%s", want, out)
	}
}

func TestQueryAndDataset(t *testing.T) {
	reg := New()
	reg.Query("aggregate", nil)
	reg.Query("aggregate", errors.New("bad mode"))
	reg.DatasetLoaded("embedded", 42, nil)
	reg.DatasetLoaded("pg", 0, errors.New("down"))

	out := scrape(t, reg)
	for _, want := range []string{
		`layoffs_queries_total{op="aggregate",outcome="ok"} 1`,
		`layoffs_queries_total{op="aggregate",outcome="error"} 1`,
		`layoffs_dataset_loads_total{outcome="ok",source="embedded"} 1`,
		`layoffs_dataset_loads_total{outcome="error",source="pg"} 1`,
		`layoffs_dataset_records 42`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q", want)
		}
	}
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	reg.Query("records", nil)
	reg.DatasetLoaded("file", 1, nil)
}
