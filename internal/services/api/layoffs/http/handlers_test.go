package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"layoffs/internal/core/dataset"
	"layoffs/internal/core/i18n"
	"layoffs/internal/core/layoff"
	"layoffs/internal/modkit/httpkit"
	phttp "layoffs/internal/platform/net/http"
	svc "layoffs/internal/services/api/layoffs/service"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func newRouter(t *testing.T) stdhttp.Handler {
	t.Helper()
	recs := []layoff.Record{
		{Company: "Alpha Auto", Date: "2024-01-05", EmployeesAffected: 100, Location: "Berlin", Country: "Germany", Category: "Automotive"},
		{Company: "Beta Bank", Date: "2023-06-01", EmployeesAffected: 50, Location: "Paris", Country: "France", Category: "Banking"},
	}
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/layoffs", func(rr httpkit.Router) {
		Register(rr, svc.New(dataset.New("test", recs), nil, nil), i18n.RO)
	})
	return m
}

func call(t *testing.T, h stdhttp.Handler, method, path, body string, hdr map[string]string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestRoutes_Status(t *testing.T) {
	h := newRouter(t)
	cases := []struct {
		name, method, path, body string
		want                     int
	}{
		{"records", stdhttp.MethodPost, "/layoffs/records", `{"filter":{"search":"alpha"},"lang":"en"}`, 200},
		{"records empty filter", stdhttp.MethodPost, "/layoffs/records", `{}`, 200},
		{"records bad year", stdhttp.MethodPost, "/layoffs/records", `{"filter":{"year":"24"}}`, 400},
		{"records bad compensation", stdhttp.MethodPost, "/layoffs/records", `{"filter":{"compensation":"some"}}`, 400},
		{"records bad lang", stdhttp.MethodPost, "/layoffs/records", `{"lang":"fr"}`, 400},
		{"records unknown field", stdhttp.MethodPost, "/layoffs/records", `{"page":2}`, 400},
		{"aggregate", stdhttp.MethodPost, "/layoffs/aggregate", `{"mode":"company"}`, 200},
		{"aggregate missing mode", stdhttp.MethodPost, "/layoffs/aggregate", `{}`, 400},
		{"aggregate unknown mode", stdhttp.MethodPost, "/layoffs/aggregate", `{"mode":"weekly"}`, 400},
		{"totals", stdhttp.MethodPost, "/layoffs/totals", `{"scope":"filtered"}`, 200},
		{"totals bad scope", stdhttp.MethodPost, "/layoffs/totals", `{"scope":"some"}`, 400},
		{"options", stdhttp.MethodGet, "/layoffs/options?country=Romania", "", 200},
		{"options bad lang", stdhttp.MethodGet, "/layoffs/options?lang=fr", "", 400},
		{"translations", stdhttp.MethodGet, "/layoffs/translations/en", "", 200},
		{"translations unsupported", stdhttp.MethodGet, "/layoffs/translations/fr", "", 400},
		{"dataset", stdhttp.MethodGet, "/layoffs/dataset", "", 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := call(t, h, tc.method, tc.path, tc.body, nil)
			if code != tc.want || env.StatusCode != tc.want {
				t.Fatalf("code = %d envelope %d, want %d (%s)", code, env.StatusCode, tc.want, env.Error)
			}
		})
	}
}

func TestRecords_LanguageResolution(t *testing.T) {
	h := newRouter(t)
	cases := []struct {
		name   string
		body   string
		accept string
		want   string
	}{
		{"explicit wins over header", `{"filter":{"year":"1999"},"lang":"en"}`, "ro-RO", i18n.Default().T(i18n.EN, "noResults")},
		{"header negotiates", `{"filter":{"year":"1999"}}`, "en-GB,en;q=0.8", i18n.Default().T(i18n.EN, "noResults")},
		{"fallback without header", `{"filter":{"year":"1999"}}`, "", i18n.Default().T(i18n.RO, "noResults")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hdr := map[string]string{}
			if tc.accept != "" {
				hdr["Accept-Language"] = tc.accept
			}
			_, env := call(t, h, stdhttp.MethodPost, "/layoffs/records", tc.body, hdr)
			var v struct {
				Empty        bool   `json:"empty"`
				EmptyMessage string `json:"empty_message"`
			}
			if err := json.Unmarshal(env.Data, &v); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if !v.Empty || v.EmptyMessage != tc.want {
				t.Fatalf("empty=%v message=%q, want %q", v.Empty, v.EmptyMessage, tc.want)
			}
		})
	}
}

func TestTranslations_Table(t *testing.T) {
	_, env := call(t, newRouter(t), stdhttp.MethodGet, "/layoffs/translations/ro-RO", "", nil)
	var v struct {
		Lang  string            `json:"lang"`
		Table map[string]string `json:"table"`
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Lang != "ro" || v.Table["noResults"] != i18n.Default().T(i18n.RO, "noResults") {
		t.Fatalf("lang=%q noResults=%q", v.Lang, v.Table["noResults"])
	}
}

func TestDataset_Status(t *testing.T) {
	_, env := call(t, newRouter(t), stdhttp.MethodGet, "/layoffs/dataset", "", nil)
	var st dataset.Status
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Source != "test" || st.Count != 2 || st.LoadedAt == nil {
		t.Fatalf("status = %+v", st)
	}
}
