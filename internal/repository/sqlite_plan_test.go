package repository

import (
	"context"
	"testing"
	"time"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() domain.GraduationPlan {
	return domain.GraduationPlan{
		Major:          domain.MajorComputerScience,
		Track:          "Machine Intelligence",
		TotalSemesters: 1,
		GraduationDate: "Fall Year 1",
		Schedules: []domain.CourseSchedule{{
			Term:         domain.TermFall,
			Year:         1,
			Courses:      []domain.ScheduledCourse{{Code: "CS 18000", Title: "Problem Solving and Object-Oriented Programming", Credits: 4}},
			TotalCredits: 4,
			CSCredits:    4,
		}},
		SuccessProbability: 0.85,
		Risk:               domain.RiskOnTrack,
	}
}

func TestPlanRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))
	repo := NewSQLitePlanRepo(db)

	snap := testutil.NewTestSnapshot(s.ID, samplePlan(), domain.SelectedChoices{"track": {"Machine Intelligence"}})
	require.NoError(t, repo.Create(ctx, snap))

	fetched, err := repo.GetByID(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanFinal, fetched.Status)
	assert.Equal(t, snap.Selected, fetched.Selected)
	assert.Equal(t, snap.Plan, fetched.Plan)
}

func TestPlanRepo_PendingPlanRoundTripsChoices(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))
	repo := NewSQLitePlanRepo(db)

	pending := domain.GraduationPlan{
		Major:          domain.MajorComputerScience,
		GraduationDate: "Pending Course Selections",
		ChoiceRequest: domain.ChoiceRequest{
			"ai_course": {
				Key: "ai_course", Category: "AI Course", RequirementType: "choose 1", Choose: 1,
				Options: []domain.ChoiceOption{{Code: "CS 47100", Title: "Introduction to Artificial Intelligence"}},
			},
		},
	}
	snap := testutil.NewTestSnapshot(s.ID, pending, nil)
	require.NoError(t, repo.Create(ctx, snap))

	fetched, err := repo.GetByID(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPendingChoices, fetched.Status)
	assert.True(t, fetched.Plan.NeedsChoices())
	assert.Equal(t, pending.ChoiceRequest, fetched.Plan.ChoiceRequest)
	assert.Empty(t, fetched.Selected)
}

func TestPlanRepo_LatestAndHistory(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	s := testutil.NewTestStudent("Ada", testutil.WithSeq(1))
	require.NoError(t, NewSQLiteStudentRepo(db).Create(ctx, s))
	repo := NewSQLitePlanRepo(db)

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		snap := testutil.NewTestSnapshot(s.ID, samplePlan(), nil)
		snap.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, snap))
		ids = append(ids, snap.ID)
	}

	latest, err := repo.Latest(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, ids[2], latest.ID)

	history, err := repo.ListByStudent(ctx, s.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ids[2], history[0].ID)
	assert.Equal(t, ids[1], history[1].ID)

	all, err := repo.ListByStudent(ctx, s.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPlanRepo_LatestNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := NewSQLitePlanRepo(db).Latest(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
