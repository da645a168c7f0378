package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type cmdTag string

func (c cmdTag) String() string      { return string(c) }
func (c cmdTag) RowsAffected() int64 { return 1 }

// fakeRows yields one value per row
type fakeRows struct {
	data   []any
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	v := r.data[r.i-1]
	if e, ok := v.(error); ok {
		return e
	}
	dv := reflect.ValueOf(dest[0]).Elem()
	sv := reflect.ValueOf(v)
	if !sv.Type().AssignableTo(dv.Type()) {
		return errors.New("type mismatch")
	}
	dv.Set(sv)
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return []string{"v"} }

type fakeRowQuerier struct {
	rows     *fakeRows
	queryErr error
	lastSQL  string
	lastArgs []any
}

func (f *fakeRowQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return cmdTag("OK"), nil
}

func (f *fakeRowQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeRowQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return &fakeRows{data: []any{f.queryErr}, i: 1}
	}
	f.rows.Next()
	return f.rows
}

func TestScalar(t *testing.T) {
	t.Parallel()

	q := &fakeRowQuerier{rows: &fakeRows{data: []any{int64(12)}}}
	n, err := Scalar[int64](context.Background(), q, "SELECT count(*) FROM layoffs")
	if err != nil || n != 12 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}

	boom := errors.New("boom")
	q = &fakeRowQuerier{queryErr: boom}
	if _, err := Scalar[int64](context.Background(), q, "x"); !errors.Is(err, boom) {
		t.Fatalf("Scalar err = %v", err)
	}
}

func TestMany(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		q       *fakeRowQuerier
		want    []string
		wantErr bool
	}{
		{"rows", &fakeRowQuerier{rows: &fakeRows{data: []any{"a", "b", "c"}}}, []string{"a", "b", "c"}, false},
		{"empty", &fakeRowQuerier{rows: &fakeRows{}}, nil, false},
		{"query error", &fakeRowQuerier{queryErr: errors.New("down")}, nil, true},
		{"scan error", &fakeRowQuerier{rows: &fakeRows{data: []any{"a", errors.New("bad")}}}, nil, true},
		{"iterator error", &fakeRowQuerier{rows: &fakeRows{data: []any{"a"}, err: errors.New("late")}}, []string{"a"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Many(context.Background(), c.q, Column[string], "SELECT doc FROM layoffs WHERE position > $1", 0)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr && !reflect.DeepEqual(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			if c.q.rows != nil && !c.q.rows.closed {
				t.Fatalf("rows not closed")
			}
			if !reflect.DeepEqual(c.q.lastArgs, []any{0}) {
				t.Fatalf("args = %v", c.q.lastArgs)
			}
		})
	}
}
