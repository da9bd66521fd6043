package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_NormalizesProfile(t *testing.T) {
	schema := &RosterSchema{
		Students: []StudentImport{
			{
				Name: " Ada ", Major: "cs", Track: "se", Year: 2, Term: "spring",
				Completed:      []string{"cs180", "ma161", "CS 18000"},
				Summer:         ptrBool(false),
				GraduationGoal: "3.5",
				Selections:     map[string][]string{"se_elective": {"cs422"}},
			},
		},
	}

	got := Convert(schema, testCatalog(t))
	require.Len(t, got, 1)
	s := got[0].Student

	assert.NotEmpty(t, s.ID)
	assert.Zero(t, s.Seq)
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, domain.MajorComputerScience, s.Profile.Major)
	assert.Equal(t, "Software Engineering", s.Profile.Track)
	assert.Equal(t, domain.TermSpring, s.Profile.CurrentTerm)
	assert.Equal(t, []string{"CS 18000", "MA 16100"}, s.Profile.CompletedCourses)
	require.NotNil(t, s.Profile.SummerCourses)
	assert.False(t, *s.Profile.SummerCourses)
	assert.Equal(t, domain.LoadStandard, s.Profile.CreditLoad)
	assert.Equal(t, domain.GoalThreeAndHalfYear, s.Profile.GraduationGoal)
	assert.Equal(t, domain.SelectedChoices{"se_elective": {"CS 42200"}}, got[0].Selections)
}

func TestConvert_UnansweredSummerStaysNil(t *testing.T) {
	got := Convert(validMinimalSchema(), testCatalog(t))
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Student.Profile.SummerCourses)
	assert.Nil(t, got[0].Selections)
}

func TestLoadRosterSchema_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"students":[{"name":"Ada","major":"cs","year":2,"term":"Fall","summer":true}]}`), 0644))
	schema, err := LoadRosterSchema(jsonPath)
	require.NoError(t, err)
	require.Len(t, schema.Students, 1)
	assert.Equal(t, "Ada", schema.Students[0].Name)
	require.NotNil(t, schema.Students[0].Summer)
	assert.True(t, *schema.Students[0].Summer)

	yamlPath := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
students:
  - name: Bo
    major: ds
    year: 1
    term: Spring
    completed: [cs180, stat350]
    selections:
      ds_electives: [CS 57300, STAT 51400]
`), 0644))
	schema, err = LoadRosterSchema(yamlPath)
	require.NoError(t, err)
	require.Len(t, schema.Students, 1)
	assert.Equal(t, []string{"cs180", "stat350"}, schema.Students[0].Completed)
	assert.Equal(t, []string{"CS 57300", "STAT 51400"}, schema.Students[0].Selections["ds_electives"])
	assert.Nil(t, schema.Students[0].Summer)
}

func TestLoadRosterSchema_Errors(t *testing.T) {
	_, err := LoadRosterSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"students": [`), 0644))
	_, err = LoadRosterSchema(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing roster file")
}
