package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/importer"
	"github.com/boilerai/boilerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRoster() *importer.RosterSchema {
	yes := true
	return &importer.RosterSchema{
		Students: []importer.StudentImport{
			{
				Name: "Ada", Major: "cs", Track: "mi", Year: 2, Term: "Fall",
				Completed: []string{"cs180", "cs182", "cs240", "ma161", "ma162"},
				Summer:    &yes,
				Selections: map[string][]string{
					"ai_course":    {"cs471"},
					"stats_course": {"STAT 51200"},
					"mi_electives": {"CS 31400", "CS 57300"},
				},
			},
			{Name: "Bo", Major: "ds", Year: 1, Term: "Spring", GraduationGoal: "3.5"},
		},
	}
}

func TestImportRoster_CreatesStudentsAndSelections(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	res, err := f.imports.ImportRosterFromSchema(ctx, validRoster())
	require.NoError(t, err)
	require.Len(t, res.Students, 2)
	assert.Equal(t, 3, res.SelectionCount)
	assert.Equal(t, 1, res.Students[0].Seq)
	assert.Equal(t, 2, res.Students[1].Seq)

	ada, err := f.students.Resolve(ctx, "#1")
	require.NoError(t, err)
	assert.Equal(t, "Machine Intelligence", ada.Profile.Track)
	assert.Equal(t, []string{"CS 18000", "CS 18200", "CS 24000", "MA 16100", "MA 16200"}, ada.Profile.CompletedCourses)

	bo, err := f.students.Resolve(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.GoalThreeAndHalfYear, bo.Profile.GraduationGoal)
	assert.Nil(t, bo.Profile.SummerCourses)

	saved, err := f.selections.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS 47100"}, saved["ai_course"])

	snap, err := f.plans.Generate(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanFinal, snap.Status)
}

func TestImportRoster_SeqContinuesAfterExistingStudents(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	f.addStudent(t)

	res, err := f.imports.ImportRosterFromSchema(ctx, validRoster())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Students[0].Seq)
	assert.Equal(t, 3, res.Students[1].Seq)
}

func TestImportRoster_ValidationErrorsWriteNothing(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	roster := validRoster()
	roster.Students[1].Year = 0
	roster.Students[1].Major = "astrology"

	_, err := f.imports.ImportRosterFromSchema(ctx, roster)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors):")
	assert.Contains(t, err.Error(), "students[1].year")

	list, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportRoster_RollbackOnSecondStudentFailure(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	// Exec calls: #1 seq seed, #2 Ada, #3-#5 Ada's selections, #6 seq seed, #7 Bo
	boom := errors.New("injected student create failure")
	failing := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 7, Err: boom}
	svc := NewImportService(f.catalog, failing)

	_, err := svc.ImportRosterFromSchema(ctx, validRoster())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `creating student "Bo"`)

	list, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "no students should exist after rollback")

	res, err := f.imports.ImportRosterFromSchema(ctx, validRoster())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Students[0].Seq, "rolled back seq allocation is reused")
}

func TestImportRoster_FromFile(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "roster.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
students:
  - name: Cy
    major: Artificial Intelligence
    year: 3
    term: spring
    summer: false
`), 0644))

	res, err := f.imports.ImportRoster(ctx, path)
	require.NoError(t, err)
	require.Len(t, res.Students, 1)
	assert.Equal(t, domain.MajorArtificialIntelligence, res.Students[0].Profile.Major)
	require.NotNil(t, res.Students[0].Profile.SummerCourses)
	assert.False(t, *res.Students[0].Profile.SummerCourses)

	_, err = f.imports.ImportRoster(ctx, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading roster file")
}

func TestImportRoster_Observed(t *testing.T) {
	rec := &recordingObserver{}
	f := setupServices(t, rec)

	_, err := f.imports.ImportRosterFromSchema(context.Background(), validRoster())
	require.NoError(t, err)

	events := rec.named("import-roster")
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, 2, events[0].Fields["students"])
	assert.Equal(t, 3, events[0].Fields["selections"])
}
