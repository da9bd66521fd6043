package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp
// directory so goroutines share one on-disk store.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_StudentSeqUnique creates students from several
// goroutines, each allocating its seq inside a transaction.
func TestConcurrentAccess_StudentSeqUnique(t *testing.T) {
	database := newConcurrentTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	const writers, perWriter = 4, 5
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					seq, err := NewSQLiteSequenceRepo(tx).Next(ctx, StudentSequence)
					if err != nil {
						return err
					}
					s := testutil.NewTestStudent(fmt.Sprintf("w%d-%d", writer, i), testutil.WithSeq(seq))
					return NewSQLiteStudentRepo(tx).Create(ctx, s)
				})
				if err != nil {
					t.Errorf("writer %d: %v", writer, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	students, err := NewSQLiteStudentRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, students, writers*perWriter)

	seqs := make([]int, 0, len(students))
	for _, s := range students {
		seqs = append(seqs, s.Seq)
	}
	sort.Ints(seqs)
	for i, seq := range seqs {
		assert.Equal(t, i+1, seq)
	}
}

// TestConcurrentAccess_ReadsDuringSnapshotWrites lists plan history while
// another goroutine appends snapshots.
func TestConcurrentAccess_ReadsDuringSnapshotWrites(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(database).Create(ctx, s))
	plans := NewSQLitePlanRepo(database)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			snap := testutil.NewTestSnapshot(s.ID, domain.GraduationPlan{Major: domain.MajorComputerScience}, nil)
			if err := plans.Create(ctx, snap); err != nil {
				t.Errorf("writer: %v", err)
				return
			}
		}
	}()

	for r := 0; r < 3; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := plans.ListByStudent(ctx, s.ID, 0)
				if err != nil {
					t.Errorf("reader %d: %v", reader, err)
					return
				}
				for _, p := range list {
					if p.ID == "" || p.StudentID != s.ID {
						t.Errorf("reader %d: got a half-written snapshot", reader)
					}
				}
			}
		}(r)
	}
	wg.Wait()

	all, err := plans.ListByStudent(ctx, s.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
