package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"layoffs/internal/core/dataset"
	modkit "layoffs/internal/modkit"
	phttp "layoffs/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type failedDataset struct{}

func (failedDataset) Dataset(context.Context) dataset.Status {
	return dataset.Status{Source: "file", Error: "open data/layoffs.json: no such file"}
}

func TestModule_ReadyUsesDatasetPort(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Dataset: failedDataset{}}))
	if m.Name() != "meta" {
		t.Fatalf("name = %q", m.Name())
	}
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	if !strings.Contains(rec.Body.String(), `"status":"degraded"`) {
		t.Fatalf("ready = %s", rec.Body.String())
	}
}
