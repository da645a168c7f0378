//go:build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "layoffs",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/layoffs?sslmode=disable", host, port.Port())
}

func TestOpen_Integration_AppNameAndRoundTrip(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, AppName: "layoffs-pg-integration", MaxConns: 2}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	if err := p.WaitReady(ctx, Retry{Attempts: 5, Timeout: 2 * time.Second, Backoff: 100 * time.Millisecond, Max: time.Second}); err != nil {
		t.Fatalf("WaitReady: %v", err)
	}

	if _, err := p.Pool.Exec(ctx, `CREATE TABLE layoffs (position int PRIMARY KEY, doc jsonb NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := p.Pool.Exec(ctx, `INSERT INTO layoffs (position, doc) VALUES (1, $1)`, `{"company":"Alpha"}`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var company string
	if err := p.Pool.QueryRow(ctx, `SELECT doc->>'company' FROM layoffs WHERE position = 1`).Scan(&company); err != nil {
		t.Fatalf("select: %v", err)
	}
	if company != "Alpha" {
		t.Fatalf("company = %q", company)
	}

	var app string
	if err := p.Pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("app name: %v", err)
	}
	if app != "layoffs-pg-integration" {
		t.Fatalf("application_name = %q", app)
	}
}
