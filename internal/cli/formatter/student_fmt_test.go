package formatter

import (
	"testing"
	"time"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleStudent() *domain.Student {
	no := false
	return &domain.Student{
		ID:   "0f8e2a4c-1111-2222-3333-444455556666",
		Seq:  3,
		Name: "Ada",
		Profile: domain.StudentProfile{
			Major:            domain.MajorComputerScience,
			Track:            "Software Engineering",
			CompletedCourses: []string{"CS 18000", "MA 16100"},
			CurrentYear:      2,
			CurrentTerm:      domain.TermSpring,
			SummerCourses:    &no,
			CreditLoad:       domain.LoadHeavy,
			GraduationGoal:   domain.GoalThreeAndHalfYear,
		},
		UpdatedAt: time.Now(),
	}
}

func TestFormatStudentList(t *testing.T) {
	out := stripANSI(FormatStudentList([]*domain.Student{sampleStudent()}))
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, out, "Software Engineering")
	assert.Contains(t, out, "Year 2 · Spring")
	assert.Contains(t, out, "Just now")
}

func TestFormatStudentList_Empty(t *testing.T) {
	assert.Contains(t, FormatStudentList(nil), "No students yet")
}

func TestFormatStudent_ShowsProfileAndQuestions(t *testing.T) {
	out := stripANSI(FormatStudent(sampleStudent(), []string{"Which CS track interests you?"}))
	assert.Contains(t, out, "#3 Ada")
	assert.Contains(t, out, "heavy")
	assert.Contains(t, out, "3.5 year")
	assert.Contains(t, out, "SUMMER     no")
	assert.Contains(t, out, "COMPLETED (2)")
	assert.Contains(t, out, "CS 18000, MA 16100")
	assert.Contains(t, out, "? Which CS track interests you?")
}

func TestFormatStudent_NoQuestionsSection(t *testing.T) {
	s := sampleStudent()
	s.Profile.CompletedCourses = nil
	out := stripANSI(FormatStudent(s, nil))
	assert.Contains(t, out, "none recorded")
	assert.NotContains(t, out, "QUESTIONS")
}
