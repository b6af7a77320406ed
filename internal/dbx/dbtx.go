// Package dbx provides the small database abstractions repositories and
// services share: a minimal query interface implemented by both *sql.DB and
// *sql.Tx, a transaction helper, and a Runner that services receive instead
// of reaching for a global connection.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is a unit of work executed with a transactional handle.
type TxFunc func(ctx context.Context, tx DBTX) error

// Runner hands out the handle repositories are bound to. Conn is used for
// single statements, InTx for work that must commit atomically.
type Runner interface {
	Conn() DBTX
	InTx(ctx context.Context, fn TxFunc) error
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// SQLRunner is the Runner over a *sql.DB pool.
type SQLRunner struct {
	db   *sql.DB
	opts *sql.TxOptions
}

// NewSQLRunner wraps db. Transactions use the driver's default isolation.
func NewSQLRunner(db *sql.DB) *SQLRunner {
	return &SQLRunner{db: db}
}

func (r *SQLRunner) Conn() DBTX {
	return r.db
}

func (r *SQLRunner) InTx(ctx context.Context, fn TxFunc) error {
	return WithTx(ctx, r.db, r.opts, fn)
}
