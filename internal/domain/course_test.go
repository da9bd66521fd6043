package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseLevel(t *testing.T) {
	cases := map[string]int{
		"CS 18000":          1,
		"MA 26100":          2,
		"CS 38100":          3,
		"CS 47100":          4,
		"CS 57300":          4,
		"Free Elective 1":   0,
		"Humanities Core I": 0,
	}
	for code, want := range cases {
		assert.Equal(t, want, CourseLevel(code), code)
	}
}

func TestCourseRecord_LimitedOffering(t *testing.T) {
	fallOnly := CourseRecord{Code: "CS 47100", Offered: []Term{TermFall}}
	everywhere := CourseRecord{Code: "CS 18000", Offered: []Term{TermFall, TermSpring, TermSummer}}

	assert.True(t, fallOnly.LimitedOffering())
	assert.False(t, everywhere.LimitedOffering())
	assert.True(t, everywhere.OfferedIn(TermSummer))
	assert.False(t, fallOnly.OfferedIn(TermSpring))
}

func TestCourseRecord_PlaceholderHasNoDepartment(t *testing.T) {
	p := CourseRecord{Code: "CS Selective 1", Placeholder: true}
	assert.Equal(t, "", p.Department())
	assert.False(t, p.IsCS())

	c := CourseRecord{Code: "CS 25100"}
	assert.True(t, c.IsCS())
}

func TestPrereqTerm_AnyOf(t *testing.T) {
	term := PrereqTerm{AnyOf: []string{"CS 25100", "CS 25300"}}
	have := map[string]bool{"CS 25300": true}

	assert.True(t, term.SatisfiedBy(func(c string) bool { return have[c] }))
	assert.False(t, term.SatisfiedBy(func(string) bool { return false }))
	assert.Equal(t, "CS 25100 or CS 25300", term.String())
}

func TestRequirementSet_CoursesDeduplicatesInOrder(t *testing.T) {
	set := RequirementSet{
		{Key: "core", Courses: []string{"CS 25100", "CS 38100"}},
		{Key: "track", Courses: []string{"CS 38100", "CS 37300"}},
	}

	assert.Equal(t, []string{"CS 25100", "CS 38100", "CS 37300"}, set.Courses())

	filtered := set.Filter(func(c string) bool { return c != "CS 25100" && c != "CS 38100" })
	assert.Len(t, filtered, 1)
	assert.Equal(t, "track", filtered[0].Key)
	assert.False(t, filtered.Empty())
	assert.True(t, RequirementSet{}.Empty())
}

func TestChoiceRequest_SortedByOrder(t *testing.T) {
	req := ChoiceRequest{
		"stats_course": {Key: "stats_course", Order: 2},
		"ai_course":    {Key: "ai_course", Order: 1},
		"mi_electives": {Key: "mi_electives", Order: 3},
	}
	sorted := req.Sorted()
	assert.Equal(t, "ai_course", sorted[0].Key)
	assert.Equal(t, "stats_course", sorted[1].Key)
	assert.Equal(t, "mi_electives", sorted[2].Key)
}
