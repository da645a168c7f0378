// Package metrics holds the prometheus registry and the collectors the api exposes on /metrics
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"layoffs/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "layoffs"

// Registry owns a private prometheus registry plus the service collectors
type Registry struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	queries  *prometheus.CounterVec
	records  prometheus.Gauge
	loads    *prometheus.CounterVec
}

// New builds a registry with go runtime and process collectors attached
func New() *Registry {
	r := &Registry{reg: prometheus.NewRegistry()}

	r.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status",
	}, []string{"method", "route", "status"})

	r.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.queries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Dashboard queries by operation and outcome",
	}, []string{"op", "outcome"})

	r.records = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "dataset",
		Name:      "records",
		Help:      "Records held by the in-memory store",
	})

	r.loads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dataset",
		Name:      "loads_total",
		Help:      "Dataset loads by source and outcome",
	}, []string{"source", "outcome"})

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests, r.latency, r.queries, r.records, r.loads,
	)
	return r
}

// Handler serves the registry in the prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests and pushers
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Query counts one dashboard operation; a nil registry is a no-op
func (r *Registry) Query(op string, err error) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(op, outcome(err)).Inc()
}

// DatasetLoaded records a load attempt and the resulting record count
func (r *Registry) DatasetLoaded(source string, n int, err error) {
	if r == nil {
		return
	}
	r.loads.WithLabelValues(source, outcome(err)).Inc()
	if err == nil {
		r.records.Set(float64(n))
	}
}

// Middleware observes every request by its chi route pattern
// the pattern is read after next runs because chi fills it while routing
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := middleware.RoutePattern(req)
		r.requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.latency.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
