package repositories

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// txFromContext returns the transaction carried by ctx, if any
func txFromContext(ctx context.Context) (DBTX, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// TxManager runs functions inside a database transaction. The transaction is
// carried through the context, so every repository call made within fn joins
// the same transaction.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a transaction manager over the given database handle
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTx begins a transaction, runs fn with a transactional context, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
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

	err = fn(context.WithValue(ctx, txKey{}, tx))
	return err
}
