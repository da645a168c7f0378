package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"layoffs/internal/platform/config"
	phttp "layoffs/internal/platform/net/http"
)

// serve starts srv on its own goroutine and returns the base url and the Run result
func serve(t *testing.T, srv *phttp.Server) (context.CancelFunc, string, <-chan error) {
	t.Helper()
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	return cancel, "http://" + srv.Addr(), done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_ServesAndStops(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:0")
	t.Setenv("SHUTDOWN_GRACE", "500ms")
	srv := phttp.NewServer(config.New())

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	cancel, base, done := serve(t, srv)
	defer cancel()

	resp, err := http.Get(base + "/ping")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "pong" || resp.Header.Get("X-MW") != "yes" {
		t.Fatalf("got %d %q mw=%q", resp.StatusCode, body, resp.Header.Get("X-MW"))
	}

	cancel()
	wait(t, done)
}

func TestServer_AddrBeforeAndAfterListen(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())
	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("configured addr = %q", srv.Addr())
	}
	cancel, _, done := serve(t, srv)
	if srv.Addr() == "127.0.0.1:0" {
		t.Fatalf("bound addr not reported: %q", srv.Addr())
	}
	cancel()
	wait(t, done)
}

func TestServer_Run_ReturnsListenError(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:abc")
	if err := phttp.NewServer(config.New()).Run(context.Background()); err == nil {
		t.Fatalf("expected an error for an invalid addr")
	}
}

func TestNewServer_Config(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		cfg  config.Conf
		want string
	}{
		{"default", map[string]string{"PORT": ""}, config.New(), ":4000"},
		{"plain", map[string]string{"PORT": ":12345"}, config.New(), ":12345"},
		{"prefixed", map[string]string{"LAYOFFS_API_PORT": ":4321"}, config.New().Prefix("LAYOFFS_API_"), ":4321"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := phttp.NewServer(tc.cfg).Addr(); got != tc.want {
				t.Fatalf("Addr = %q, want %q", got, tc.want)
			}
		})
	}
}
