package planner

import (
	"fmt"

	"github.com/boilerai/boilerplan/internal/domain"
)

// requirementState is the evaluated view of one program: what is still
// needed and which choices remain open.
type requirementState struct {
	outstanding domain.RequirementSet
	pending     domain.ChoiceRequest
}

// evaluate walks the categories of (major, track) in catalog order.
// A course listed by more than one category counts only for the first.
// Slot categories are evaluated last so they only consume completed
// courses no other category claimed.
func (p *Planner) evaluate(profile domain.StudentProfile, track string, selected domain.SelectedChoices) (requirementState, error) {
	cats, err := p.catalog.Categories(profile.Major, track)
	if err != nil {
		return requirementState{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	completed := make(map[string]bool, len(profile.CompletedCourses))
	for _, c := range profile.CompletedCourses {
		completed[c] = true
	}
	seen := make(map[string]bool)
	groups := make([]domain.RequirementGroup, len(cats))
	var state requirementState

	for i, cat := range cats {
		groups[i] = domain.RequirementGroup{Key: cat.Key, Label: cat.Label}
		switch cat.Kind {
		case domain.CategoryRequired:
			for _, code := range cat.Courses {
				if seen[code] {
					continue
				}
				seen[code] = true
				if completed[code] {
					continue
				}
				groups[i].Courses = append(groups[i].Courses, code)
			}

		case domain.CategoryChoice:
			courses, choice := evaluateChoice(cat, i, completed, seen, selected[cat.Key])
			groups[i].Courses = courses
			if choice != nil {
				if state.pending == nil {
					state.pending = make(domain.ChoiceRequest)
				}
				state.pending[choice.Key] = *choice
			}
		}
	}

	var pool []string
	for _, code := range profile.CompletedCourses {
		if !seen[code] {
			pool = append(pool, code)
		}
	}
	for i, cat := range cats {
		if cat.Kind != domain.CategorySlots {
			continue
		}
		for _, slot := range cat.Courses {
			if j := firstAccepted(cat, pool); j >= 0 {
				pool = append(pool[:j], pool[j+1:]...)
				continue
			}
			groups[i].Courses = append(groups[i].Courses, slot)
		}
	}

	for _, g := range groups {
		if len(g.Courses) > 0 {
			state.outstanding = append(state.outstanding, g)
		}
	}
	return state, nil
}

// evaluateChoice counts completed options first, then valid selections.
// Selections beyond the remaining quota and codes that are not options are
// ignored. An unresolved choice asks only for the remaining quota and
// offers only options not already completed or selected.
func evaluateChoice(
	cat domain.RequirementCategory,
	order int,
	completed, seen map[string]bool,
	picks []string,
) ([]string, *domain.Choice) {
	satisfied := 0
	for _, o := range cat.Options {
		if satisfied < cat.Choose && completed[o.Code] && !seen[o.Code] {
			seen[o.Code] = true
			satisfied++
		}
	}

	var courses []string
	for _, code := range picks {
		if satisfied >= cat.Choose {
			break
		}
		if !isOption(cat, code) || completed[code] || seen[code] {
			continue
		}
		seen[code] = true
		courses = append(courses, code)
		satisfied++
	}
	if satisfied >= cat.Choose {
		return courses, nil
	}

	var options []domain.ChoiceOption
	for _, o := range cat.Options {
		if completed[o.Code] || seen[o.Code] {
			continue
		}
		options = append(options, o)
	}
	remaining := cat.Choose - satisfied
	if len(options) < remaining {
		remaining = len(options)
	}
	if remaining == 0 {
		return courses, nil
	}
	return courses, &domain.Choice{
		Key:             cat.Key,
		Category:        cat.Label,
		RequirementType: requirementType(remaining),
		Options:         options,
		Choose:          remaining,
		Order:           order,
	}
}

func isOption(cat domain.RequirementCategory, code string) bool {
	for _, o := range cat.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

func firstAccepted(cat domain.RequirementCategory, pool []string) int {
	for i, code := range pool {
		if cat.AcceptsForSlot(code) {
			return i
		}
	}
	return -1
}
