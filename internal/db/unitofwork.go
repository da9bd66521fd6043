package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNestedTx is returned when WithinTx is called from inside another
// transaction. The store runs on a single connection, so the inner call
// would wait forever for the outer one.
var ErrNestedTx = errors.New("transaction already open on this context")

// UnitOfWork runs fn inside one transaction. fn builds tx-scoped
// repositories from the DBTX it is handed; returning an error rolls back
// every write made through it.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type txMarker struct{}

// InTx reports whether ctx was handed out by WithinTx.
func InTx(ctx context.Context) bool {
	return ctx.Value(txMarker{}) != nil
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	if InTx(ctx) {
		return ErrNestedTx
	}
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
	}()

	if err = fn(context.WithValue(ctx, txMarker{}, true), tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}
