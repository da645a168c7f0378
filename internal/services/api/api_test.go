package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"layoffs/internal/core/dataset"
	"layoffs/internal/core/layoff"
	"layoffs/internal/platform/config"
	"layoffs/internal/platform/metrics"
	phttp "layoffs/internal/platform/net/http"
	"layoffs/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func newAPI(t *testing.T) (http.Handler, *metrics.Registry) {
	t.Helper()
	reg := metrics.New()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config: config.New().Prefix("LAYOFFS_API_TEST_"),
		Dataset: dataset.New("embedded", []layoff.Record{
			{Company: "Alpha", Date: "2024-01-05", EmployeesAffected: 10, Country: "Germany", Location: "Berlin"},
		}),
		Metrics:       reg,
		EnableSwagger: true,
	})
	return mux, reg
}

func hit(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMount_Routes(t *testing.T) {
	h, _ := newAPI(t)
	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/meta/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/meta/ready", "", http.StatusOK},
		{http.MethodGet, "/api/v1/layoffs/dataset", "", http.StatusOK},
		{http.MethodPost, "/api/v1/layoffs/aggregate", `{"mode":"year"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/layoffs/aggregate", `{"mode":"weekly"}`, http.StatusBadRequest},
		{http.MethodGet, "/api/v1/preferences/language", "", http.StatusOK},
		{http.MethodGet, "/api/docs/doc.json", "", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := hit(h, tc.method, tc.path, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s %s = %d, want %d (%s)", tc.method, tc.path, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestMount_RequestIDAndNoCache(t *testing.T) {
	h, _ := newAPI(t)
	rec := hit(h, http.MethodGet, "/api/v1/layoffs/dataset", "")
	testkit.MustContain(t, rec.Body.String(), `"request_id":"`)
	if !strings.Contains(rec.Header().Get("Cache-Control"), "no-cache") {
		t.Fatalf("cache-control = %q", rec.Header().Get("Cache-Control"))
	}
}

func TestMount_MetricsEndpoint(t *testing.T) {
	h, _ := newAPI(t)
	hit(h, http.MethodGet, "/api/v1/layoffs/dataset", "")
	hit(h, http.MethodPost, "/api/v1/layoffs/records", `{}`)

	rec := hit(h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics = %d", rec.Code)
	}
	body := rec.Body.String()
	testkit.MustContain(t, body, `layoffs_http_requests_total{method="GET",route="/api/v1/layoffs/dataset",status="200"} 1`)
	testkit.MustContain(t, body, `layoffs_queries_total{op="records",outcome="ok"} 1`)
}
