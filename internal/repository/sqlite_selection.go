package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
)

// SQLiteSelectionRepo implements SelectionRepo using a SQLite database.
type SQLiteSelectionRepo struct {
	db db.DBTX
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: conn}
}

// Get returns an empty, non-nil map for a student with no selections.
func (r *SQLiteSelectionRepo) Get(ctx context.Context, studentID string) (domain.SelectedChoices, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT choice_key, codes FROM choice_selections WHERE student_id = ? ORDER BY choice_key`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing selections: %w", err)
	}
	defer rows.Close()

	out := make(domain.SelectedChoices)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scanning selection row: %w", err)
		}
		var codes []string
		if err := decodeJSON(raw, &codes, "selection codes"); err != nil {
			return nil, err
		}
		out[key] = codes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}
	return out, nil
}

// Save upserts one row per key. Keys absent from selected are left alone;
// a key with no codes is removed.
func (r *SQLiteSelectionRepo) Save(ctx context.Context, studentID string, selected domain.SelectedChoices) error {
	keys := make([]string, 0, len(selected))
	for k := range selected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := formatTimestamp(time.Now())
	for _, key := range keys {
		codes := selected[key]
		if len(codes) == 0 {
			if _, err := r.db.ExecContext(ctx,
				`DELETE FROM choice_selections WHERE student_id = ? AND choice_key = ?`, studentID, key); err != nil {
				return fmt.Errorf("removing selection %s: %w", key, err)
			}
			continue
		}
		raw, err := encodeJSON(codes, "selection codes")
		if err != nil {
			return err
		}
		query := `INSERT INTO choice_selections (student_id, choice_key, codes, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(student_id, choice_key) DO UPDATE SET codes = excluded.codes, updated_at = excluded.updated_at`
		if _, err := r.db.ExecContext(ctx, query, studentID, key, raw, now); err != nil {
			return fmt.Errorf("saving selection %s: %w", key, err)
		}
	}
	return nil
}

func (r *SQLiteSelectionRepo) Clear(ctx context.Context, studentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM choice_selections WHERE student_id = ?`, studentID); err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	return nil
}
