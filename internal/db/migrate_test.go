package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"students", "sequences", "choice_selections", "plan_snapshots"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
	for _, idx := range []string{"idx_students_seq", "idx_plan_snapshots_student"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SeedsStudentSequence(t *testing.T) {
	db := openTestDB(t)

	var next int
	require.NoError(t, db.QueryRow(`SELECT next_seq FROM sequences WHERE name = 'students'`).Scan(&next))
	assert.Equal(t, 1, next)
}

func TestMigrate_CheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, name, major, current_year, current_term, created_at, updated_at)
		VALUES ('s1', 'Ada', 'computer_science', 9, 'Fall', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "current_year outside 1-4 is rejected")

	_, err = db.Exec(`INSERT INTO students (id, name, major, current_year, current_term, created_at, updated_at)
		VALUES ('s2', 'Ada', 'computer_science', 1, 'Winter', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown term is rejected")
}

func TestMigrate_CascadeDeletesStudentData(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, seq, name, major, current_year, current_term, created_at, updated_at)
		VALUES ('s1', 1, 'Ada', 'computer_science', 1, 'Fall', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO choice_selections (student_id, choice_key, codes, updated_at) VALUES ('s1', 'track', '["Machine Intelligence"]', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO plan_snapshots (id, student_id, status, payload, created_at) VALUES ('p1', 's1', 'final', '{}', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM students WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM choice_selections`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM plan_snapshots`).Scan(&n))
	assert.Zero(t, n)
}

// TestMigrate_UpgradePath_LegacyStudentsGetSeq simulates a store created
// before students were numbered.
func TestMigrate_UpgradePath_LegacyStudentsGetSeq(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE students (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		major             TEXT NOT NULL,
		track             TEXT NOT NULL DEFAULT '',
		current_year      INTEGER NOT NULL,
		current_term      TEXT NOT NULL,
		summer_courses    INTEGER,
		credit_load       TEXT NOT NULL DEFAULT 'standard',
		graduation_goal   TEXT NOT NULL DEFAULT '4_year',
		completed_courses TEXT NOT NULL DEFAULT '[]',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO students (id, name, major, current_year, current_term, created_at, updated_at) VALUES
		('b', 'Second', 'data_science', 2, 'Spring', '2026-02-01T00:00:00Z', '2026-02-01T00:00:00Z'),
		('a', 'First', 'computer_science', 1, 'Fall', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var seqA, seqB, next int
	require.NoError(t, db.QueryRow(`SELECT seq FROM students WHERE id = 'a'`).Scan(&seqA))
	require.NoError(t, db.QueryRow(`SELECT seq FROM students WHERE id = 'b'`).Scan(&seqB))
	require.NoError(t, db.QueryRow(`SELECT next_seq FROM sequences WHERE name = 'students'`).Scan(&next))
	assert.Equal(t, 1, seqA)
	assert.Equal(t, 2, seqB)
	assert.Equal(t, 3, next)

	require.NoError(t, Migrate(db))
	require.NoError(t, db.QueryRow(`SELECT next_seq FROM sequences WHERE name = 'students'`).Scan(&next))
	assert.Equal(t, 3, next, "re-running migrations keeps the sequence")
}
