package repository

import (
	"context"
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRepo_EmptyForNewStudent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))

	got, err := NewSQLiteSelectionRepo(db).Get(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectionRepo_SaveReplacesPerKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))
	repo := NewSQLiteSelectionRepo(db)

	require.NoError(t, repo.Save(ctx, s.ID, domain.SelectedChoices{
		"track":     {"Machine Intelligence"},
		"ai_course": {"CS 47100"},
	}))
	require.NoError(t, repo.Save(ctx, s.ID, domain.SelectedChoices{
		"ai_course":    {"CS 47300"},
		"mi_electives": {"CS 31400"},
	}))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SelectedChoices{
		"track":        {"Machine Intelligence"},
		"ai_course":    {"CS 47300"},
		"mi_electives": {"CS 31400"},
	}, got)
}

func TestSelectionRepo_EmptyCodesRemoveKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))
	repo := NewSQLiteSelectionRepo(db)

	require.NoError(t, repo.Save(ctx, s.ID, domain.SelectedChoices{"ai_course": {"CS 47100"}, "track": {"Software Engineering"}}))
	require.NoError(t, repo.Save(ctx, s.ID, domain.SelectedChoices{"ai_course": nil}))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SelectedChoices{"track": {"Software Engineering"}}, got)

	require.NoError(t, repo.Clear(ctx, s.ID))
	got, err = repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectionRepo_UnknownStudentRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSelectionRepo(db)

	err := repo.Save(context.Background(), "nobody", domain.SelectedChoices{"track": {"Machine Intelligence"}})
	assert.Error(t, err, "foreign key should reject selections for unknown students")
}
