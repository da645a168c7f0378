// Package repo stores the layoff dataset as one JSON document per row,
// in postgres or clickhouse, ordered by position
package repo

import (
	"context"
	"encoding/json"
	"regexp"

	"layoffs/internal/core/dataset"
	"layoffs/internal/core/layoff"
	"layoffs/internal/modkit/repokit"
	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
)

// DefaultTable is used when no table is configured
const DefaultTable = "layoffs"

// Repo is the persistence surface for layoff documents
type Repo interface {
	// All reads every record in position order
	All(ctx context.Context) ([]layoff.Record, error)
	// Migrate creates the table when missing
	Migrate(ctx context.Context) error
	// Replace swaps the stored set for recs and returns the rows written
	Replace(ctx context.Context, recs []layoff.Record) (int, error)
}

var ident = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// CheckTable rejects anything that is not a plain sql identifier
func CheckTable(table string) error {
	if !ident.MatchString(table) {
		return perr.InvalidArgf("invalid table name %q", table)
	}
	return nil
}

// Source adapts a Repo into a dataset loader
func Source(name string, r Repo) dataset.Loader {
	return dataset.Func{Label: name, Fn: r.All}
}

func encode(recs []layoff.Record) ([][]byte, error) {
	out := make([][]byte, len(recs))
	for i, r := range recs {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "encode record %d", i)
		}
		out[i] = b
	}
	return out, nil
}

func decode(table string, docs [][]byte) ([]layoff.Record, error) {
	out := make([]layoff.Record, 0, len(docs))
	for i, d := range docs {
		rec, err := layoff.DecodeRecord(d)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "%s: row %d", table, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

type (
	// PG binds the repo to a postgres Queryer or TxRunner
	PG struct{ Table string }

	pgRepo struct {
		q     repokit.Queryer
		table string
	}
)

// NewPG returns a binder for table, DefaultTable when empty
func NewPG(table string) repokit.Binder[Repo] {
	if table == "" {
		table = DefaultTable
	}
	return PG{Table: table}
}

// Bind wires a Queryer to the repo
func (b PG) Bind(q repokit.Queryer) Repo { return &pgRepo{q: q, table: b.Table} }

func (r *pgRepo) All(ctx context.Context) ([]layoff.Record, error) {
	if err := CheckTable(r.table); err != nil {
		return nil, err
	}
	docs, err := store.Many(ctx, r.q, store.Column[[]byte], `select doc from `+r.table+` order by position`)
	if perr.IsUndefinedTable(err) {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "table %s is missing, seed it first", r.table)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "read %s", r.table)
	}
	return decode(r.table, docs)
}

func (r *pgRepo) Migrate(ctx context.Context) error {
	if err := CheckTable(r.table); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `create table if not exists `+r.table+` (
  position integer primary key,
  doc      jsonb   not null
)`)
	return perr.FromPostgres(err, "create "+r.table)
}

func (r *pgRepo) Replace(ctx context.Context, recs []layoff.Record) (int, error) {
	if err := CheckTable(r.table); err != nil {
		return 0, err
	}
	docs, err := encode(recs)
	if err != nil {
		return 0, err
	}

	write := func(q repokit.Queryer) error {
		if _, err := q.Exec(ctx, `delete from `+r.table); err != nil {
			return err
		}
		for i, d := range docs {
			if _, err := q.Exec(ctx, `insert into `+r.table+` (position, doc) values ($1, $2::jsonb)`, i, string(d)); err != nil {
				return err
			}
		}
		n, err := store.Scalar[int64](ctx, q, `select count(*) from `+r.table)
		if err != nil {
			return err
		}
		if int(n) != len(docs) {
			return perr.DBf("replace %s: %d rows stored, %d written", r.table, n, len(docs))
		}
		return nil
	}

	if tx, ok := r.q.(repokit.TxRunner); ok {
		err = repokit.WithTx(ctx, tx, write)
	} else {
		err = write(r.q)
	}
	if err != nil {
		return 0, perr.FromPostgresf(err, "replace %s", r.table)
	}
	return len(docs), nil
}

type chRepo struct {
	db    repokit.Columnar
	table string
}

// NewCH returns the clickhouse repo for table, DefaultTable when empty
func NewCH(db repokit.Columnar, table string) Repo {
	if table == "" {
		table = DefaultTable
	}
	return &chRepo{db: db, table: table}
}

func (r *chRepo) All(ctx context.Context) ([]layoff.Record, error) {
	if err := CheckTable(r.table); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT doc FROM `+r.table+` ORDER BY position`)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "read %s", r.table)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "scan %s", r.table)
		}
		docs = append(docs, []byte(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "read %s", r.table)
	}
	return decode(r.table, docs)
}

func (r *chRepo) Migrate(ctx context.Context) error {
	if err := CheckTable(r.table); err != nil {
		return err
	}
	err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+r.table+` (
  position UInt32,
  doc      String
) ENGINE = MergeTree ORDER BY position`)
	return perr.WrapIf(err, perr.ErrorCodeDB, "create "+r.table)
}

func (r *chRepo) Replace(ctx context.Context, recs []layoff.Record) (int, error) {
	if err := CheckTable(r.table); err != nil {
		return 0, err
	}
	docs, err := encode(recs)
	if err != nil {
		return 0, err
	}
	if err := r.db.Exec(ctx, `TRUNCATE TABLE IF EXISTS `+r.table); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeDB, "truncate %s", r.table)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	rows := make([][]any, len(docs))
	for i, d := range docs {
		rows[i] = []any{uint32(i), string(d)}
	}
	if err := r.db.Insert(ctx, r.table, []string{"position", "doc"}, rows); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeDB, "insert %s", r.table)
	}
	return len(docs), nil
}
