// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"sync"
	"time"

	"layoffs/internal/core/dataset"
	"layoffs/internal/core/version"
	"layoffs/internal/modkit/httpkit"
)

// Pinger is a backend the readiness probe can reach
type Pinger interface {
	Ping(stdctx.Context) error
}

// DatasetReporter reports the load state of the record store
type DatasetReporter interface {
	Dataset(stdctx.Context) dataset.Status
}

// Deps are the handler dependencies; nil backends are reported as skipped
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	PG           Pinger
	CH           Pinger
	KV           Pinger
	Dataset      DatasetReporter
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts health, ready, version and service
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"layoffs-api"`
	Started string `json:"started"  example:"2026-03-01T10:00:00Z"`
	Now     string `json:"now"      example:"2026-03-01T10:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-01T10:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"layoffs-api"`
	Started string `json:"started" example:"2026-03-01T10:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.deps.ServiceName, Started: stamp(h.deps.StartedAt), Now: stamp(h.now())}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Description A failing backend is fail, a dataset that did not load is degraded
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	backends := []struct {
		name string
		p    Pinger
	}{{"pg", h.deps.PG}, {"ch", h.deps.CH}, {"redis", h.deps.KV}}

	// backends are pinged in parallel so one slow dial does not eat the others' timeout
	checks := make([]ReadyCheck, len(backends), len(backends)+1)
	var wg sync.WaitGroup
	for i, b := range backends {
		checks[i] = ReadyCheck{Name: b.name, Status: "skipped"}
		if b.p == nil {
			continue
		}
		wg.Go(func() {
			checks[i].Status = "ok"
			if err := b.p.Ping(ctx); err != nil {
				checks[i].Status, checks[i].Error = "fail", err.Error()
			}
		})
	}
	wg.Wait()

	ds := ReadyCheck{Name: "dataset", Status: "skipped"}
	if h.deps.Dataset != nil {
		ds.Status = "ok"
		if st := h.deps.Dataset.Dataset(ctx); st.Error != "" {
			ds.Status, ds.Error = "fail", st.Error
		}
	}
	checks = append(checks, ds)

	return ReadyResponse{Status: overall(checks), Checks: checks, Now: stamp(h.now())}, nil
}

// overall fails on any failed backend; a failed dataset alone only degrades
func overall(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		if c.Status != "fail" {
			continue
		}
		if c.Name != "dataset" {
			return "fail"
		}
		status = "degraded"
	}
	return status
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}
