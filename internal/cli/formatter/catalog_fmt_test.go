package formatter

import (
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatCourseList(t *testing.T) {
	out := stripANSI(FormatCourseList([]domain.CourseRecord{
		{Code: "CS 18000", Title: "Problem Solving and Object-Oriented Programming", Credits: 4, Offered: []domain.Term{domain.TermFall, domain.TermSpring, domain.TermSummer}},
		{Code: "CS 47100", Title: "Artificial Intelligence", Credits: 3, Offered: []domain.Term{domain.TermFall}},
	}))
	assert.Contains(t, out, "CS 18000")
	assert.Contains(t, out, "Fall/Spring/Summer")
	assert.Contains(t, out, "CS 47100")
}

func TestFormatCourseDetail(t *testing.T) {
	out := stripANSI(FormatCourseDetail(&service.CourseDetail{
		Course: domain.CourseRecord{
			Code: "CS 25200", Title: "Systems Programming", Credits: 4, Level: 2,
			Offered: []domain.Term{domain.TermFall, domain.TermSpring},
		},
		Prerequisites: []domain.PrereqTerm{{AnyOf: []string{"CS 25000"}}, {AnyOf: []string{"CS 25100"}}},
		Chain:         []string{"CS 25000", "CS 25100", "CS 24000", "CS 18200", "CS 18000"},
		Unlocks:       []string{"CS 35200", "CS 35400"},
		Tree: []service.PrereqLine{
			{Codes: []string{"CS 25000"}, Depth: 0},
			{Codes: []string{"CS 24000"}, Depth: 1, Last: true},
			{Codes: []string{"CS 25100"}, Depth: 0, Last: true},
			{Codes: []string{"STAT 35000", "STAT 35500"}, Depth: 1, Last: true, Note: "Fall only"},
		},
	}, []string{"CS 24000", "STAT 35500"}))

	assert.Contains(t, out, "CS 25200  Systems Programming")
	assert.Contains(t, out, "4 credits · level 2 · Fall/Spring")
	assert.Contains(t, out, "├─ CS 25000")
	assert.Contains(t, out, "│  └─ ✔ CS 24000")
	assert.Contains(t, out, "└─ CS 25100")
	assert.Contains(t, out, "✔ STAT 35000 or STAT 35500")
	assert.Contains(t, out, "[ Fall only ]")
	assert.Contains(t, out, "5 courses in the full chain")
	assert.Contains(t, out, "CS 35200, CS 35400")
}

func TestFormatCourseDetail_NoPrerequisites(t *testing.T) {
	out := stripANSI(FormatCourseDetail(&service.CourseDetail{
		Course: domain.CourseRecord{Code: "CS 18000", Title: "Programming", Credits: 4, Level: 1},
	}, nil))
	assert.Contains(t, out, "none")
	assert.NotContains(t, out, "full chain")
}

func TestFormatTracks(t *testing.T) {
	out := stripANSI(FormatTracks(domain.MajorComputerScience, []domain.ChoiceOption{
		{Code: "Machine Intelligence", Title: "Machine Intelligence", Description: "ML and AI", BestFor: []string{"AI research"}},
	}))
	assert.Contains(t, out, "COMPUTER SCIENCE TRACKS")
	assert.Contains(t, out, "ML and AI")
	assert.Contains(t, out, "best for: AI research")

	assert.Contains(t, FormatTracks(domain.MajorDataScience, nil), "Data Science has no tracks")
}
