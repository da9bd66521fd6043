package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const planProgressBarWidth = 20

// FormatPlan renders a graduation plan. A plan still waiting on course
// choices renders the pending choices instead of semesters.
func FormatPlan(plan *domain.GraduationPlan) string {
	var b strings.Builder

	b.WriteString(planSummary(plan))

	if plan.NeedsChoices() {
		b.WriteString("\n")
		b.WriteString(FormatChoiceRequest(plan.ChoiceRequest))
		writeBullets(&b, "Recommendations", plan.Recommendations, StyleFg)
		return RenderBox("Graduation Plan", b.String())
	}

	for _, s := range plan.Schedules {
		b.WriteString("\n")
		b.WriteString(FormatSemester(s))
	}

	if !plan.RemainingRequirements.Empty() {
		b.WriteString("\n")
		b.WriteString(Header("Not yet scheduled") + "\n")
		for _, g := range plan.RemainingRequirements {
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleYellow.Render(g.Label), strings.Join(g.Courses, ", ")))
		}
	}

	writeBullets(&b, "Warnings", plan.Warnings, StyleYellow)
	writeBullets(&b, "Recommendations", plan.Recommendations, StyleFg)
	writeBullets(&b, "Customized for you", plan.CustomizationNotes, StyleDim)

	return RenderBox("Graduation Plan", b.String())
}

func planSummary(plan *domain.GraduationPlan) string {
	var b strings.Builder

	title := plan.Major.DisplayName()
	if plan.Track != "" {
		title += " · " + plan.Track
	}
	b.WriteString(Bold(title) + "\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}
	field("GRADUATES", StyleFg.Render(plan.GraduationDate))
	if !plan.NeedsChoices() {
		field("SEMESTERS", StyleFg.Render(strconv.Itoa(plan.TotalSemesters)))
		field("SUCCESS", RenderProgress(plan.SuccessProbability, planProgressBarWidth))
	}
	field("RISK", RiskIndicator(plan.Risk))
	field("COMPLETED", StyleFg.Render(strconv.Itoa(len(plan.CompletedCourses))+" courses"))
	return b.String()
}

// FormatSemester renders one planned term as a table followed by its own
// warnings and recommendations.
func FormatSemester(s domain.CourseSchedule) string {
	var b strings.Builder

	b.WriteString(Header(s.Label()) + "\n")
	rows := make([][]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		code := Bold(c.Code)
		if c.Filler {
			code = Dim(c.Code)
		}
		rows = append(rows, []string{code, c.Title, strconv.Itoa(c.Credits)})
	}
	b.WriteString(RenderTableAligned([]string{"CODE", "TITLE", "CR"}, rows, 2))
	b.WriteString(Dim(fmt.Sprintf("%s total, %d CS", Credits(s.TotalCredits), s.CSCredits)) + "\n")

	for _, w := range s.Warnings {
		b.WriteString(StyleYellow.Render("  ! "+w) + "\n")
	}
	for _, r := range s.Recommendations {
		b.WriteString(StyleBlue.Render("  → "+r) + "\n")
	}
	return b.String()
}

// FormatPlanHistory lists stored snapshots, newest first.
func FormatPlanHistory(snaps []*domain.PlanSnapshot) string {
	if len(snaps) == 0 {
		return Dim("No plans generated yet.") + "\n"
	}
	headers := []string{"ID", "WHEN", "STATUS", "SEMESTERS", "SUCCESS", "GRADUATES"}
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		success := Dim("--")
		semesters := Dim("--")
		if s.Status == domain.PlanFinal {
			success = RiskColor(s.Plan.Risk).Render(Percent(s.Plan.SuccessProbability))
			semesters = strconv.Itoa(s.Plan.TotalSemesters)
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestamp(s.CreatedAt),
			PlanStatusPill(s.Status),
			semesters,
			success,
			s.Plan.GraduationDate,
		})
	}
	return RenderBox("Plan History", RenderTableAligned(headers, rows, 3, 4))
}

func writeBullets(b *strings.Builder, title string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + Header(title) + "\n")
	for _, item := range items {
		b.WriteString("  • " + style.Render(item) + "\n")
	}
}
