package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Tx is what repositories query through: a pool or an open transaction.
type Tx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunInTx runs f in a read-committed transaction. When ctx already carries
// one, f joins it and the outer caller owns commit and rollback.
func (db *Database) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return db.RunInTxOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, f)
}

func (db *Database) RunInTxOptions(ctx context.Context, opts pgx.TxOptions, f func(context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return f(ctx)
	}

	// BeginTxFunc rolls back on error or panic and commits otherwise.
	return pgx.BeginTxFunc(ctx, db.p, opts, func(tx pgx.Tx) error {
		return f(NewTxContext(ctx, tx))
	})
}

type txCtxKey struct{}

func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txCtxKey{}).(pgx.Tx)

	return tx
}

func NewTxContext(parent context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(parent, txCtxKey{}, tx)
}

func (db *Database) loadDB(ctx context.Context) Tx {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}

	return db.p
}
