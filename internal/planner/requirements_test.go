package planner

import (
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(set domain.RequirementSet, key string) []string {
	for _, g := range set {
		if g.Key == key {
			return g.Courses
		}
	}
	return nil
}

func TestCalculateRequirements_SubtractsCompleted(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{
		Major:            domain.MajorComputerScience,
		Track:            "Machine Intelligence",
		CompletedCourses: []string{"CS 18000", "CS 18200", "MA 16100"},
		CurrentYear:      2,
		CurrentTerm:      domain.TermFall,
	}

	set, err := p.CalculateRequirements(profile, miSelections())
	require.NoError(t, err)

	assert.Equal(t, []string{"CS 24000", "CS 25000", "CS 25100", "CS 25200"}, group(set, "core_foundation"))
	assert.Equal(t, []string{"CS 35100", "CS 38100"}, group(set, "core_intermediate"))
	assert.Equal(t, []string{"CS 37300"}, group(set, "mi_required"), "CS 38100 counts once, in core")
	assert.Equal(t, []string{"CS 47100"}, group(set, "ai_course"))
	assert.Equal(t, []string{"CS 31400", "CS 57300"}, group(set, "mi_electives"))
	assert.NotContains(t, set.Courses(), "MA 16100")
	assert.Len(t, group(set, "free_electives"), 8)
}

func TestCalculateRequirements_OpenChoicesContributeNothing(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{Major: domain.MajorComputerScience, Track: "SE", CurrentYear: 1, CurrentTerm: domain.TermFall}

	set, err := p.CalculateRequirements(profile, nil)
	require.NoError(t, err)

	assert.Nil(t, group(set, "compiler_os_course"))
	assert.Equal(t, []string{"CS 30700", "CS 40700", "CS 40800"}, group(set, "se_required"))
}

func TestCalculateRequirements_SlotsConsumeUnclaimedCourses(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{
		Major:            domain.MajorDataScience,
		CompletedCourses: []string{"CS 18000", "CHEM 11500", "HIST 10300", "ECON 25100", "ART 10500"},
		CurrentYear:      2,
		CurrentTerm:      domain.TermSpring,
	}

	set, err := p.CalculateRequirements(profile, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Science Elective 2"}, group(set, "science_elective"))
	assert.Equal(t, []string{"General Education Elective 4", "General Education Elective 5"}, group(set, "gen_ed_electives"))
	assert.Len(t, group(set, "free_electives"), 9)
}

func TestCalculateRequirements_TrackNeeded(t *testing.T) {
	p := newTestPlanner(t)

	_, err := p.CalculateRequirements(domain.StudentProfile{Major: domain.MajorComputerScience, CurrentYear: 1, CurrentTerm: domain.TermFall}, nil)
	assert.ErrorIs(t, err, ErrTrackUnresolved)
}

func TestResolveChoicesNeeded_CompletedOptionsResolve(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{
		Major:            domain.MajorComputerScience,
		Track:            "Machine Intelligence",
		CompletedCourses: []string{"CS 47100", "CS 44800"},
		CurrentYear:      4,
		CurrentTerm:      domain.TermFall,
	}

	req, err := p.ResolveChoicesNeeded(profile, nil)
	require.NoError(t, err)

	assert.NotContains(t, req, "ai_course")
	require.Contains(t, req, "mi_electives")
	mi := req["mi_electives"]
	assert.Equal(t, 1, mi.Choose)
	assert.Equal(t, "choose 1", mi.RequirementType)
	assert.False(t, mi.HasOption("CS 44800"), "completed options are not offered again")
	assert.Len(t, mi.Options, 4)
}

func TestResolveChoicesNeeded_PartialSelectionShrinksQuota(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{Major: domain.MajorComputerScience, Track: "Machine Intelligence", CurrentYear: 1, CurrentTerm: domain.TermFall}

	req, err := p.ResolveChoicesNeeded(profile, domain.SelectedChoices{
		"mi_electives": {"cs314", "CS 99999"},
		"ai_course":    {"CS 47100", "CS 47300"},
	})
	require.NoError(t, err)

	assert.NotContains(t, req, "ai_course")
	require.Contains(t, req, "mi_electives")
	assert.Equal(t, 1, req["mi_electives"].Choose)
	assert.False(t, req["mi_electives"].HasOption("CS 31400"))

	set, err := p.CalculateRequirements(profile, domain.SelectedChoices{"ai_course": {"CS 47100", "CS 47300"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"CS 47100"}, group(set, "ai_course"), "extra picks beyond the quota are dropped")
}

func TestResolveChoicesNeeded_EmptyWhenResolved(t *testing.T) {
	p := newTestPlanner(t)
	profile := domain.StudentProfile{Major: domain.MajorComputerScience, Track: "Machine Intelligence", CurrentYear: 1, CurrentTerm: domain.TermFall}

	req, err := p.ResolveChoicesNeeded(profile, miSelections())
	require.NoError(t, err)
	assert.NotNil(t, req)
	assert.Empty(t, req)
}

func TestChoiceRequest_SortedFollowsCatalog(t *testing.T) {
	req := miChoiceRequest(t)

	var keys []string
	for _, c := range req.Sorted() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"ai_course", "stats_course", "mi_electives"}, keys)
}
