package scheduler

import (
	"fmt"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
)

// FeedbackInput describes one allocated semester for per-semester review.
type FeedbackInput struct {
	Slot      SemesterSlot
	Alloc     Allocation
	HardPairs []domain.HardPair
	// Limited reports whether a scheduled course is offered in only one of
	// Fall and Spring.
	Limited func(code string) bool
}

// SemesterFeedback returns warnings and recommendations for one semester.
func (p Policy) SemesterFeedback(in FeedbackInput) (warnings, recommendations []string) {
	high := p.Ceiling(domain.LoadStandard, domain.TermFall)

	if in.Alloc.CSCourses > p.CSCap {
		warnings = append(warnings, fmt.Sprintf("Heavy CS course load (%d CS courses) - consider reducing if struggling", in.Alloc.CSCourses))
	}
	if in.Alloc.TotalCredits > high {
		warnings = append(warnings, fmt.Sprintf("High credit load (%d credits) - ensure you can handle the workload", in.Alloc.TotalCredits))
	}
	if in.Slot.Term != domain.TermSummer && in.Alloc.TotalCredits < p.FloorRegular {
		warnings = append(warnings, fmt.Sprintf("Low credit load (%d credits) - may delay graduation", in.Alloc.TotalCredits))
	}

	scheduled := make(map[string]bool, len(in.Alloc.Courses))
	for _, c := range in.Alloc.Courses {
		scheduled[c.Code] = true
	}
	for _, hp := range in.HardPairs {
		all := len(hp.Courses) > 0
		for _, code := range hp.Courses {
			if !scheduled[code] {
				all = false
				break
			}
		}
		if all {
			warnings = append(warnings, hp.Message)
		}
	}

	if in.Slot.Year == 1 && in.Alloc.CSCourses == 1 {
		recommendations = append(recommendations, "Good balance for freshman year - focus on building strong foundations")
	}
	if in.Limited != nil && in.Slot.Term != domain.TermSummer {
		for _, c := range in.Alloc.Courses {
			if in.Limited(c.Code) {
				recommendations = append(recommendations,
					fmt.Sprintf("Taking advantage of %s-only course offerings - good planning!", strings.ToLower(string(in.Slot.Term))))
				break
			}
		}
	}
	return warnings, recommendations
}
