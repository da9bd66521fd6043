package scheduler

import "github.com/boilerai/boilerplan/internal/domain"

// CreditLimits are the per-term credit ceilings for one load preference.
type CreditLimits struct {
	Fall   int
	Spring int
	Summer int
}

func (l CreditLimits) For(term domain.Term) int {
	switch term {
	case domain.TermSpring:
		return l.Spring
	case domain.TermSummer:
		return l.Summer
	default:
		return l.Fall
	}
}

// Policy holds every threshold the schedule builder and analyzer apply.
type Policy struct {
	Loads          map[domain.CreditLoad]CreditLimits
	CSCap          int
	CSCapFirstYear int
	CSCapSummer    int
	FloorRegular   int
	FloorSummer    int
	Semesters      map[domain.GraduationGoal]int
	CSHeavyCredits int
	Weights        ScoringWeights
}

func DefaultPolicy() Policy {
	return Policy{
		Loads: map[domain.CreditLoad]CreditLimits{
			domain.LoadLight:    {Fall: 15, Spring: 15, Summer: 6},
			domain.LoadStandard: {Fall: 18, Spring: 18, Summer: 9},
			domain.LoadHeavy:    {Fall: 21, Spring: 21, Summer: 12},
		},
		CSCap:          3,
		CSCapFirstYear: 2,
		CSCapSummer:    2,
		FloorRegular:   12,
		FloorSummer:    6,
		Semesters: map[domain.GraduationGoal]int{
			domain.GoalThreeYear:        6,
			domain.GoalThreeAndHalfYear: 7,
			domain.GoalFourYear:         8,
			domain.GoalFlexible:         10,
		},
		CSHeavyCredits: 9,
		Weights:        DefaultWeights(),
	}
}

// Ceiling is the maximum credits for a semester. Unknown loads fall back
// to the standard limits.
func (p Policy) Ceiling(load domain.CreditLoad, term domain.Term) int {
	limits, ok := p.Loads[load]
	if !ok {
		limits = p.Loads[domain.LoadStandard]
	}
	return limits.For(term)
}

// RegularCeiling is the Fall ceiling for load, used to estimate how many
// extra semesters unscheduled work needs.
func (p Policy) RegularCeiling(load domain.CreditLoad) int {
	return p.Ceiling(load, domain.TermFall)
}

func (p Policy) Floor(term domain.Term) int {
	if term == domain.TermSummer {
		return p.FloorSummer
	}
	return p.FloorRegular
}

// CSCourseCap is the maximum number of CS courses in one semester.
func (p Policy) CSCourseCap(year int, term domain.Term) int {
	if term == domain.TermSummer {
		return p.CSCapSummer
	}
	if year <= 1 {
		return p.CSCapFirstYear
	}
	return p.CSCap
}

func (p Policy) SemesterCount(goal domain.GraduationGoal) int {
	if n, ok := p.Semesters[goal]; ok {
		return n
	}
	return p.Semesters[domain.GoalFourYear]
}

func (p Policy) Limits(load domain.CreditLoad, slot SemesterSlot) SemesterLimits {
	return SemesterLimits{
		MaxCredits:   p.Ceiling(load, slot.Term),
		MinCredits:   p.Floor(slot.Term),
		MaxCSCourses: p.CSCourseCap(slot.Year, slot.Term),
	}
}
