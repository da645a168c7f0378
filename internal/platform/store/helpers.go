package store

import "context"

// Column scans a single value; pass it as the scan func of Many
func Column[T any](r Row) (T, error) {
	var v T
	return v, r.Scan(&v)
}

// Scalar runs a single row, single column query such as select count(*)
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	return Column[T](q.QueryRow(ctx, sql, args...))
}

// Many runs sql and maps each row with scan, keeping result order.
// The first scan or iteration error aborts the read.
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
