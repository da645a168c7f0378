// Package repokit is what repos bind to instead of the store package:
// a Queryer for sql, a Columnar for clickhouse and the tx helper.
package repokit

import (
	"context"
	"fmt"
	"time"

	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
)

type (
	// Queryer is a pool or a transaction
	Queryer = store.RowQuerier

	// TxRunner opens transactions
	TxRunner = store.TxRunner

	// Columnar is the clickhouse seam
	Columnar = store.Clickhouse
)

// Binder builds a repo over a Queryer, so the same repo runs on the pool or inside WithTx
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds b to q. A nil q is a wiring bug and panics.
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind to nil Queryer")
	}
	return b.Bind(q)
}

// WithTx runs fn in one transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	if tx == nil {
		return perr.Unavailablef("postgres is not configured")
	}
	return tx.Tx(ctx, fn)
}

// GuardTimeout bounds MustGuard when ctx carries no deadline
const GuardTimeout = 5 * time.Second

// MustGuard pings every backend of st and panics on failure; for tools that
// have nothing useful to do without their store
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("store guard: %w", err))
	}
}
