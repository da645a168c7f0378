package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"select 1", "select 1"},
		{"  select   1  ", "select 1"},
		{"SELECT doc\n\tFROM layoffs\r\nORDER BY position", "SELECT doc FROM layoffs ORDER BY position"},
		{"", ""},
	}
	for _, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("compact(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		ev    QueryEvent
		level string
	}{
		{"plain", QueryEvent{SQL: "SELECT 1", Elapsed: 1500 * time.Microsecond}, "info"},
		{"slow", QueryEvent{SQL: "SELECT 1", Elapsed: 1500 * time.Microsecond, Slow: true}, "warn"},
		{"failed", QueryEvent{SQL: "SELECT 1", Elapsed: 1500 * time.Microsecond, Slow: true, Err: errors.New("boom")}, "error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))
			tr.OnQuery(context.Background(), c.ev)

			var line struct {
				Level     string  `json:"level"`
				ElapsedMS float64 `json:"elapsed_ms"`
				SQL       string  `json:"sql"`
				Component string  `json:"component"`
				Message   string  `json:"message"`
			}
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
				t.Fatalf("unmarshal: %v raw=%s", err, buf.String())
			}
			if line.Level != c.level {
				t.Fatalf("level = %q, want %q", line.Level, c.level)
			}
			if line.ElapsedMS != 1.5 || line.SQL != "SELECT 1" || line.Component != "pg" || line.Message != "pg query" {
				t.Fatalf("unexpected line: %+v", line)
			}
		})
	}
}
