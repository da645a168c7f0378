// Package swaggerkit serves the swagger UI and an OpenAPI 3.0 rendering of
// the generated document, with the error envelope filled in on every route.
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	phttp "layoffs/internal/platform/net/http"
	docs "layoffs/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options tune the served document
type Options struct {
	// BaseURL goes into servers, /api/v1 when empty
	BaseURL string
	// TitleSuffix is appended to info.title, e.g. "(staging)"
	TitleSuffix string
}

// docReader returns the raw generated document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Mount serves /api/docs/ (UI) and /api/docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool, o Options) {
	if !enabled {
		return
	}
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		spec, err := render(docReader(), o)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}

// render parses raw and rewrites it into what the UI is given
func render(raw string, o Options) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, err
	}

	// the UI renders 3.0 reliably, 2.0 and 3.1 less so
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": o.BaseURL}}
	}
	if info, ok := spec["info"].(map[string]any); ok && o.TitleSuffix != "" {
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + o.TitleSuffix
		}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
	defaults := []struct {
		status  int
		example string
	}{
		{http.StatusBadRequest, "mode must be one of: month, year, year_total, category, location, company"},
		{http.StatusInternalServerError, "panic recovered"},
	}
	for _, d := range defaults {
		eachOperation(spec, func(op map[string]any) {
			responses := child(op, "responses")
			key := strconv.Itoa(d.status)
			if _, ok := responses[key]; !ok {
				responses[key] = errorResponse(d.status, d.example)
			}
		})
	}
	return spec, nil
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func errorResponse(status int, example string) map[string]any {
	text := http.StatusText(status)
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"error":       example,
					"request_id":  "layoffs-api/Xb12c9-000001",
				},
			},
		},
	}
}

// eachOperation calls fn for every operation object under paths
func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		item, _ := p.(map[string]any)
		for _, o := range item {
			if op, ok := o.(map[string]any); ok {
				fn(op)
			}
		}
	}
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
