package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
)

// FormatChoiceRequest lists every pending choice in catalog order with its
// numbered options.
func FormatChoiceRequest(req domain.ChoiceRequest) string {
	if len(req) == 0 {
		return Dim("No course selections pending.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Course selections needed") + "\n")
	for _, c := range req.Sorted() {
		b.WriteString(fmt.Sprintf("\n%s %s %s\n",
			Bold(c.Category),
			StyleGold.Render("("+c.RequirementType+")"),
			Dim("["+c.Key+"]"),
		))
		for i, o := range c.Options {
			line := fmt.Sprintf("  %2d. %s", i+1, StyleBlue.Render(o.Code))
			if o.Title != o.Code {
				line += "  " + o.Title
			}
			b.WriteString(line + "\n")
			if o.Description != "" {
				b.WriteString("      " + Dim(o.Description) + "\n")
			}
			if len(o.BestFor) > 0 {
				b.WriteString("      " + Dim("best for: "+strings.Join(o.BestFor, ", ")) + "\n")
			}
		}
	}
	b.WriteString("\n" + Dim(`Reply with course codes or titles, e.g. boilerplan choose 1 "CS 47100 and CS 47300".`) + "\n")
	return b.String()
}

// FormatPicked summarizes the selections applied in one round.
func FormatPicked(picked domain.SelectedChoices) string {
	if len(picked) == 0 {
		return StyleYellow.Render("Nothing in your reply matched a pending option.") + "\n"
	}
	keys := make([]string, 0, len(picked))
	for k := range picked {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", StyleGreen.Render("✔"), Dim(k), strings.Join(picked[k], ", ")))
	}
	return b.String()
}
