package transactor

import (
	"context"
	"fmt"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type txCtxKey struct{}

func contextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// PgxTransactor is Transactor over postgres pool which also accepts explicit tx options
type PgxTransactor interface {
	Transactor
	WithinTransactionWithOptions(ctx context.Context, fn func(context.Context) error, opts pgx.TxOptions) error
}

type pgxTransactor struct {
	pool *pgxpool.Pool
}

func NewPgxTransactor(pool *pgxpool.Pool) PgxTransactor {
	return &pgxTransactor{pool: pool}
}

func (t *pgxTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return t.WithinTransactionWithOptions(ctx, fn, pgx.TxOptions{})
}

// WithinTransactionWithOptions joins transaction already carried by ctx, otherwise starts new one
func (t *pgxTransactor) WithinTransactionWithOptions(ctx context.Context, fn func(context.Context) error, opts pgx.TxOptions) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction - %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("%w (rollback failed - %v)", err, rbErr)
			}
			return
		}

		if cmErr := tx.Commit(ctx); cmErr != nil {
			err = fmt.Errorf("failed to commit transaction - %w", cmErr)
		}
	}()

	return fn(contextWithTx(ctx, tx))
}

// PgxQueryExecutor is the common part of pool and tx repositories rely on
type PgxQueryExecutor interface {
	pgxtype.Querier
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

// PgxWithinTransactionExecutor resolves executor for the ongoing call
type PgxWithinTransactionExecutor interface {
	Executor(ctx context.Context) PgxQueryExecutor
}

type pgxWithinTransactionExecutor struct {
	pool *pgxpool.Pool
}

func NewPgxWithinTransactionExecutor(pool *pgxpool.Pool) PgxWithinTransactionExecutor {
	return &pgxWithinTransactionExecutor{pool: pool}
}

// Executor returns tx carried by ctx or pool if there is no transaction in progress
func (e *pgxWithinTransactionExecutor) Executor(ctx context.Context) PgxQueryExecutor {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return e.pool
}
