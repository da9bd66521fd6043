package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
)

// FormatStudentList renders saved students in a bordered table.
func FormatStudentList(students []*domain.Student) string {
	if len(students) == 0 {
		return Dim("No students yet. Add one with: boilerplan student add --name NAME --major cs") + "\n"
	}
	headers := []string{"#", "NAME", "MAJOR", "TRACK", "STANDING", "DONE", "UPDATED"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		track := s.Profile.Track
		if track == "" {
			track = Dim("--")
		}
		rows = append(rows, []string{
			StudentRef(s.Seq),
			Bold(s.Name),
			s.Profile.Major.DisplayName(),
			track,
			Standing(s.Profile.CurrentYear, s.Profile.CurrentTerm),
			strconv.Itoa(len(s.Profile.CompletedCourses)),
			HumanTimestamp(s.UpdatedAt),
		})
	}
	return RenderBox("Students", RenderTableAligned(headers, rows, 5))
}

// FormatStudent renders a profile card. Questions the planner still has
// about the student are listed at the bottom.
func FormatStudent(s *domain.Student, questions []string) string {
	var b strings.Builder
	p := s.Profile

	b.WriteString(fmt.Sprintf("%s %s\n", StudentRef(s.Seq), Bold(s.Name)))
	b.WriteString(Dim(s.ID) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-9s", label)), value))
	}
	field("MAJOR", p.Major.DisplayName())
	track := p.Track
	if track == "" {
		track = Dim("--")
	}
	field("TRACK", track)
	field("STANDING", Standing(p.CurrentYear, p.CurrentTerm))
	field("LOAD", string(p.CreditLoad))
	field("GOAL", p.GraduationGoal.Label())
	field("SUMMER", SummerLabel(p.SummerCourses))

	b.WriteString("\n" + Header(fmt.Sprintf("Completed (%d)", len(p.CompletedCourses))) + "\n")
	if len(p.CompletedCourses) == 0 {
		b.WriteString(Dim("  none recorded") + "\n")
	} else {
		b.WriteString("  " + strings.Join(p.CompletedCourses, ", ") + "\n")
	}

	if len(questions) > 0 {
		b.WriteString("\n" + Header("Questions") + "\n")
		for _, q := range questions {
			b.WriteString("  ? " + StyleYellow.Render(q) + "\n")
		}
	}
	return RenderBox("Student", b.String())
}
