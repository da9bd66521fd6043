package scheduler

import "github.com/boilerai/boilerplan/internal/domain"

// SemesterSlot is one term of the plan. Year is the academic year number.
type SemesterSlot struct {
	Term domain.Term
	Year int
}

// IncludesSummer reports whether summers are planned for a goal.
func IncludesSummer(goal domain.GraduationGoal, summerAllowed bool) bool {
	if !summerAllowed {
		return false
	}
	return goal.Accelerated() || goal == domain.GoalFlexible
}

// Sequence lays out count semesters starting at (start, year). The academic
// year advances after the last term of each cycle. A Summer start with
// summers excluded begins at the next Fall.
func Sequence(start domain.Term, year, count int, includeSummer bool) []SemesterSlot {
	terms := []domain.Term{domain.TermFall, domain.TermSpring}
	if includeSummer {
		terms = append(terms, domain.TermSummer)
	}

	idx := -1
	for i, t := range terms {
		if t == start {
			idx = i
		}
	}
	if idx < 0 {
		idx = 0
		year++
	}

	slots := make([]SemesterSlot, 0, count)
	for i := 0; i < count; i++ {
		term := terms[idx]
		slots = append(slots, SemesterSlot{Term: term, Year: year})
		if idx == len(terms)-1 {
			year++
		}
		idx = (idx + 1) % len(terms)
	}
	return slots
}
