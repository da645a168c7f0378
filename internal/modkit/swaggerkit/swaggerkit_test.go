package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "layoffs/internal/platform/net/http"
	"layoffs/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func fetch(t *testing.T, o Options) (int, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true, o)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &spec)
	return rec.Code, spec
}

func TestDocJSON_GeneratedSpec(t *testing.T) {
	code, spec := fetch(t, Options{TitleSuffix: "(dev)"})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	info := spec["info"].(map[string]any)
	if info["title"] != "Layoffs API (dev)" {
		t.Fatalf("title = %v", info["title"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}

	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/layoffs/records", "/layoffs/aggregate", "/preferences/language", "/meta/ready"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
	op := paths["/layoffs/aggregate"].(map[string]any)["post"].(map[string]any)
	responses := op["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := responses[code]; !ok {
			t.Fatalf("aggregate missing %s response", code)
		}
	}
}

func TestDocJSON_Swagger2Lifted(t *testing.T) {
	testkit.Swap(t, &docReader, func() string {
		return `{"swagger":"2.0","info":{"title":"T"},"paths":{"/x":{"get":{"responses":{"500":{"description":"mine"}}}}}}`
	})

	_, spec := fetch(t, Options{BaseURL: "/v9"})
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("version = %v / %v", spec["swagger"], spec["openapi"])
	}
	get := spec["paths"].(map[string]any)["/x"].(map[string]any)["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	if _, ok := responses["400"]; !ok {
		t.Fatalf("default 400 not injected")
	}
	if responses["500"].(map[string]any)["description"] != "mine" {
		t.Fatalf("existing 500 overwritten: %v", responses["500"])
	}
	if spec["servers"].([]any)[0].(map[string]any)["url"] != "/v9" {
		t.Fatalf("servers = %v", spec["servers"])
	}
}

func TestDocJSON_BadDocument(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	code, _ := fetch(t, Options{})
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false, Options{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
