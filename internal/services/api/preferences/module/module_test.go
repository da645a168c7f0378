package module

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "layoffs/internal/modkit"
	phttp "layoffs/internal/platform/net/http"
	prefhttp "layoffs/internal/services/api/preferences/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type langEnvelope struct {
	StatusCode int `json:"status_code"`
	Data       struct {
		ClientID string `json:"client_id"`
		Lang     string `json:"lang"`
		Stored   bool   `json:"stored"`
	} `json:"data"`
}

func newMux() http.Handler {
	mux := chi.NewRouter()
	New(modkit.Deps{}).MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func send(t *testing.T, h http.Handler, method, body string, cookie *http.Cookie) (*httptest.ResponseRecorder, langEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, "/preferences/language", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env langEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func clientCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == prefhttp.CookieName {
			return c
		}
	}
	return nil
}

func TestPreferences_RoundTrip(t *testing.T) {
	h := newMux()

	rec, env := send(t, h, http.MethodGet, "", nil)
	if rec.Code != http.StatusOK || env.Data.Lang != "ro" || env.Data.Stored {
		t.Fatalf("first get = %d %+v", rec.Code, env)
	}
	c := clientCookie(rec)
	if c == nil {
		t.Fatalf("client cookie not issued")
	}
	if _, err := uuid.Parse(c.Value); err != nil || c.Value != env.Data.ClientID {
		t.Fatalf("cookie %q vs client id %q", c.Value, env.Data.ClientID)
	}
	if !c.HttpOnly || c.Path != "/" {
		t.Fatalf("cookie attributes = %+v", c)
	}

	rec, env = send(t, h, http.MethodPut, `{"lang":"en"}`, c)
	if rec.Code != http.StatusOK || env.Data.Lang != "en" || !env.Data.Stored {
		t.Fatalf("put = %d %+v", rec.Code, env)
	}
	if clientCookie(rec) != nil {
		t.Fatalf("known client should not get a new cookie")
	}

	_, env = send(t, h, http.MethodGet, "", c)
	if env.Data.Lang != "en" || env.Data.ClientID != c.Value {
		t.Fatalf("second get = %+v", env)
	}
}

func TestPreferences_Validation(t *testing.T) {
	h := newMux()
	for _, body := range []string{`{"lang":"fr"}`, `{}`, `{"lang":"en","x":1}`} {
		rec, env := send(t, h, http.MethodPut, body, nil)
		if rec.Code != http.StatusBadRequest || env.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: code = %d", body, rec.Code)
		}
	}
}

func TestPreferences_MalformedCookieIsReplaced(t *testing.T) {
	rec, env := send(t, newMux(), http.MethodGet, "", &http.Cookie{Name: prefhttp.CookieName, Value: "not-a-uuid"})
	c := clientCookie(rec)
	if c == nil || c.Value == "not-a-uuid" || c.Value != env.Data.ClientID {
		t.Fatalf("cookie = %+v, client = %q", c, env.Data.ClientID)
	}
}
