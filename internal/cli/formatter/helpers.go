package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanDate returns "Today", "Yesterday" or a short absolute date.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

func HumanDateFrom(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a relative time for recent events and falls back to
// HumanDate after a day.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDateFrom(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDateFrom(t, now)
	}
}

// StudentRef renders the short reference users type on the command line.
func StudentRef(seq int) string {
	if seq <= 0 {
		return Dim("--")
	}
	return StyleGold.Render(fmt.Sprintf("#%d", seq))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Standing renders a student's position, e.g. "Year 2 · Fall".
func Standing(year int, term domain.Term) string {
	return fmt.Sprintf("Year %d · %s", year, term)
}

// SummerLabel renders the optional summer preference.
func SummerLabel(summer *bool) string {
	switch {
	case summer == nil:
		return Dim("not answered")
	case *summer:
		return StyleGreen.Render("yes")
	default:
		return StyleDim.Render("no")
	}
}

// Credits renders a credit count with its unit.
func Credits(n int) string {
	if n == 1 {
		return "1 credit"
	}
	return fmt.Sprintf("%d credits", n)
}

// Percent renders a probability in [0,1] as a whole percentage.
func Percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// CodeList joins course codes for a single table cell, or "--" when empty.
func CodeList(codes []string) string {
	if len(codes) == 0 {
		return Dim("--")
	}
	return strings.Join(codes, ", ")
}
