package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/boilerai/boilerplan/internal/db"
)

// FailOnNthExecUoW behaves like the SQLite unit of work except that the
// FailOn-th ExecContext inside the transaction returns Err. Counting starts
// at 1 and only writes are counted, so tests can break a multi-row save
// part way through and check that nothing was kept.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingExec{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingExec struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
