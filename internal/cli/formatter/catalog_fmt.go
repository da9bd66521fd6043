package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/service"
)

// FormatCourseList renders catalog courses with their offering terms.
func FormatCourseList(courses []domain.CourseRecord) string {
	headers := []string{"CODE", "TITLE", "CR", "OFFERED"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Bold(c.Code),
			c.Title,
			strconv.Itoa(c.Credits),
			OfferedLabel(c),
		})
	}
	return RenderBox("Courses", RenderTableAligned(headers, rows, 2))
}

// FormatCourseDetail renders one course with its prerequisite tree and the
// courses it unlocks. Courses in completed are checked off.
func FormatCourseDetail(d *service.CourseDetail, completed []string) string {
	var b strings.Builder
	c := d.Course

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBlue.Render(c.Code), Bold(c.Title)))
	b.WriteString(Dim(fmt.Sprintf("%s · level %d · %s", Credits(c.Credits), c.Level, OfferedLabel(c))) + "\n")
	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}

	b.WriteString("\n" + Header("Prerequisites") + "\n")
	if len(d.Tree) == 0 {
		b.WriteString(Dim("  none") + "\n")
	} else {
		b.WriteString(RenderTree(prereqTreeItems(d.Tree, completed)))
		b.WriteString(Dim(fmt.Sprintf("%d courses in the full chain", len(d.Chain))) + "\n")
	}

	b.WriteString("\n" + Header("Unlocks") + "\n")
	b.WriteString("  " + CodeList(d.Unlocks) + "\n")

	return RenderBox("Course", b.String())
}

func prereqTreeItems(lines []service.PrereqLine, completed []string) []TreeItem {
	done := make(map[string]bool, len(completed))
	for _, code := range completed {
		done[code] = true
	}
	items := make([]TreeItem, 0, len(lines))
	for _, l := range lines {
		item := TreeItem{
			Title:  strings.Join(l.Codes, " or "),
			Level:  l.Depth + 1,
			IsLast: l.Last,
			Detail: l.Note,
		}
		for _, code := range l.Codes {
			if done[code] {
				item.Done = true
			}
		}
		items = append(items, item)
	}
	return items
}

// FormatTracks lists the tracks a major offers.
func FormatTracks(major domain.Major, tracks []domain.ChoiceOption) string {
	if len(tracks) == 0 {
		return Dim(major.DisplayName()+" has no tracks.") + "\n"
	}
	var b strings.Builder
	for _, t := range tracks {
		b.WriteString(Bold(t.Title) + "\n")
		if t.Description != "" {
			b.WriteString("  " + t.Description + "\n")
		}
		if len(t.BestFor) > 0 {
			b.WriteString("  " + Dim("best for: "+strings.Join(t.BestFor, ", ")) + "\n")
		}
	}
	return RenderBox(major.DisplayName()+" Tracks", b.String())
}

// OfferedLabel lists the terms a course runs in, highlighting single-term
// offerings.
func OfferedLabel(c domain.CourseRecord) string {
	if len(c.Offered) == 0 {
		return Dim("--")
	}
	terms := make([]string, 0, len(c.Offered))
	for _, t := range c.Offered {
		terms = append(terms, string(t))
	}
	label := strings.Join(terms, "/")
	if c.LimitedOffering() {
		return StyleYellow.Render(label)
	}
	return label
}
