package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent, so it is
// safe to call on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN re-runs against upgraded schemas.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillStudentSeq(db); err != nil {
		return fmt.Errorf("backfilling student seq values: %w", err)
	}
	return nil
}

// migrateBackfillStudentSeq numbers students created before the seq column
// existed, in creation order, and moves the student sequence past them.
func migrateBackfillStudentSeq(db *sql.DB) error {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var maxSeq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM students`).Scan(&maxSeq); err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT id FROM students WHERE seq = 0 ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("listing unnumbered students: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning student id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating students: %w", err)
	}

	for _, id := range ids {
		maxSeq++
		if _, err := tx.ExecContext(ctx, `UPDATE students SET seq = ? WHERE id = ?`, maxSeq, id); err != nil {
			return fmt.Errorf("numbering student %s: %w", id, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO sequences (name, next_seq) VALUES ('students', ?)
		ON CONFLICT(name) DO UPDATE SET next_seq = MAX(next_seq, excluded.next_seq)`, maxSeq+1); err != nil {
		return fmt.Errorf("seeding student sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing backfill: %w", err)
	}
	committed = true
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		major             TEXT NOT NULL,
		track             TEXT NOT NULL DEFAULT '',
		current_year      INTEGER NOT NULL CHECK(current_year BETWEEN 1 AND 4),
		current_term      TEXT NOT NULL CHECK(current_term IN ('Fall','Spring','Summer')),
		summer_courses    INTEGER,
		credit_load       TEXT NOT NULL DEFAULT 'standard',
		graduation_goal   TEXT NOT NULL DEFAULT '4_year',
		completed_courses TEXT NOT NULL DEFAULT '[]',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`ALTER TABLE students ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_students_seq ON students(seq) WHERE seq > 0`,

	`CREATE TABLE IF NOT EXISTS sequences (
		name     TEXT PRIMARY KEY,
		next_seq INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS choice_selections (
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		choice_key TEXT NOT NULL,
		codes      TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL,
		PRIMARY KEY (student_id, choice_key)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_snapshots (
		id                  TEXT PRIMARY KEY,
		student_id          TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		status              TEXT NOT NULL CHECK(status IN ('pending_choices','final')),
		selected            TEXT NOT NULL DEFAULT '{}',
		success_probability REAL NOT NULL DEFAULT 0,
		payload             TEXT NOT NULL,
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_snapshots_student ON plan_snapshots(student_id, created_at)`,
}
