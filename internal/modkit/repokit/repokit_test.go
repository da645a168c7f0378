package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
	kit "layoffs/internal/platform/testkit"
)

type fakeQ struct{ execs []string }

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}

func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row        { return nil }

type fakeTx struct {
	fakeQ
	err    error
	called int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.called++
	if err := fn(&f.fakeQ); err != nil {
		return err
	}
	return f.err
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	err := WithTx(context.Background(), tx, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "insert into layoffs")
		return err
	})
	if err != nil || tx.called != 1 || len(tx.execs) != 1 {
		t.Fatalf("err=%v called=%d execs=%v", err, tx.called, tx.execs)
	}

	boom := errors.New("boom")
	if err := WithTx(context.Background(), tx, func(Queryer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("fn error not propagated: %v", err)
	}
}

func TestWithTx_NilRunner(t *testing.T) {
	t.Parallel()

	err := WithTx(context.Background(), nil, func(Queryer) error { return nil })
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

type stubBinder struct{}

func (stubBinder) Bind(Queryer) string { return "bound" }

func TestBinder(t *testing.T) {
	t.Parallel()

	b := stubBinder{}
	if got := MustBind[string](b, &fakeQ{}); got != "bound" {
		t.Fatalf("MustBind = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustBind[string](b, nil) })
}

type fakeGuard struct {
	err      error
	deadline time.Time
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.deadline, _ = ctx.Deadline()
	return f.err
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	g := &fakeGuard{}
	start := time.Now()
	MustGuard(context.Background(), g)
	if d := g.deadline.Sub(start); d < GuardTimeout-time.Second || d > GuardTimeout+time.Second {
		t.Fatalf("default deadline %v away, want about %v", d, GuardTimeout)
	}

	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	MustGuard(parent, g)
	if want, _ := parent.Deadline(); !g.deadline.Equal(want) {
		t.Fatalf("deadline = %v, want caller's %v", g.deadline, want)
	}

	v := kit.MustPanic(t, func() { MustGuard(context.Background(), &fakeGuard{err: errors.New("pg: down")}) })
	if err, ok := v.(error); !ok || !strings.Contains(err.Error(), "pg: down") {
		t.Fatalf("panic value = %v", v)
	}
}
