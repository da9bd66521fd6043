package repository

import (
	"context"
	"fmt"

	"github.com/boilerai/boilerplan/internal/db"
)

// SQLiteSequenceRepo allocates named sequence values atomically using the
// sequences table.
type SQLiteSequenceRepo struct {
	db db.DBTX
}

// NewSQLiteSequenceRepo creates a new SQLiteSequenceRepo.
func NewSQLiteSequenceRepo(conn db.DBTX) *SQLiteSequenceRepo {
	return &SQLiteSequenceRepo{db: conn}
}

// StudentSequence numbers students for the CLI.
const StudentSequence = "students"

// seedQueries bootstrap a sequence from rows written before it existed.
var seedQueries = map[string]string{
	StudentSequence: `INSERT OR IGNORE INTO sequences (name, next_seq)
		SELECT ?, COALESCE(MAX(seq), 0) + 1 FROM students WHERE seq > 0`,
}

const defaultSeedQuery = `INSERT OR IGNORE INTO sequences (name, next_seq) VALUES (?, 1)`

// Next returns the next value of the named sequence. Allocation is atomic
// and safe under concurrent writes.
func (r *SQLiteSequenceRepo) Next(ctx context.Context, name string) (int, error) {
	seed, ok := seedQueries[name]
	if !ok {
		seed = defaultSeedQuery
	}
	if _, err := r.db.ExecContext(ctx, seed, name); err != nil {
		return 0, fmt.Errorf("seeding sequence %s: %w", name, err)
	}

	var next int
	allocQuery := `UPDATE sequences
		SET next_seq = next_seq + 1
		WHERE name = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, name).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next value of %s: %w", name, err)
	}
	return next, nil
}
