package planner

import (
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/scheduler"
)

type buildResult struct {
	schedules []domain.CourseSchedule
	planned   map[string]bool
}

// buildSchedules places needed courses semester by semester. A course is
// available once every prerequisite term is met by completed courses or
// courses planned in an earlier semester. Courses that never become
// available stay unplanned.
func (p *Planner) buildSchedules(profile domain.StudentProfile, track string, needed []string) buildResult {
	goal := profile.GraduationGoal
	slots := scheduler.Sequence(
		profile.CurrentTerm,
		profile.CurrentYear,
		p.policy.SemesterCount(goal),
		scheduler.IncludesSummer(goal, profile.SummerAllowed()),
	)

	have := make(map[string]bool, len(profile.CompletedCourses)+len(needed))
	for _, c := range profile.CompletedCourses {
		have[c] = true
	}
	res := buildResult{planned: make(map[string]bool, len(needed))}
	fillers := p.catalog.Fillers()
	hardPairs := p.catalog.HardPairs()
	limited := func(code string) bool {
		return p.catalog.Course(code).LimitedOffering()
	}

	for _, slot := range slots {
		if len(res.planned) == len(needed) {
			break
		}

		candidates := p.candidates(profile, track, slot, needed, res.planned, have)
		scheduler.CanonicalSort(candidates)
		alloc, _ := scheduler.AllocateSemester(candidates, p.policy.Limits(profile.CreditLoad, slot), fillers)

		warnings, recs := p.policy.SemesterFeedback(scheduler.FeedbackInput{
			Slot:      slot,
			Alloc:     alloc,
			HardPairs: hardPairs,
			Limited:   limited,
		})
		res.schedules = append(res.schedules, domain.CourseSchedule{
			Term:            slot.Term,
			Year:            slot.Year,
			Courses:         alloc.Courses,
			TotalCredits:    alloc.TotalCredits,
			CSCredits:       alloc.CSCredits,
			Warnings:        warnings,
			Recommendations: recs,
		})

		for _, c := range alloc.Courses {
			if c.Filler {
				continue
			}
			res.planned[c.Code] = true
			have[c.Code] = true
		}
	}
	return res
}

func (p *Planner) candidates(
	profile domain.StudentProfile,
	track string,
	slot scheduler.SemesterSlot,
	needed []string,
	planned, have map[string]bool,
) []scheduler.ScoredCandidate {
	unlocks := make(map[string]int)
	for _, code := range needed {
		if planned[code] {
			continue
		}
		counted := make(map[string]bool)
		for _, term := range p.catalog.Prerequisites(code) {
			for _, pre := range term.AnyOf {
				if !counted[pre] {
					counted[pre] = true
					unlocks[pre]++
				}
			}
		}
	}

	hasCourse := func(code string) bool { return have[code] }
	var out []scheduler.ScoredCandidate
	for i, code := range needed {
		if planned[code] || !p.catalog.IsOffered(code, slot.Term) {
			continue
		}
		if !prerequisitesMet(p.catalog.Prerequisites(code), hasCourse) {
			continue
		}
		out = append(out, scheduler.ScoreCourse(scheduler.ScoringInput{
			Course:       p.catalog.Course(code),
			CatalogIndex: i,
			Slot:         slot,
			Foundation:   p.catalog.IsFoundation(profile.Major, code),
			TrackCourse:  track != "" && p.catalog.IsTrackCourse(profile.Major, track, code),
			Unlocks:      unlocks[code],
			Weights:      p.policy.Weights,
		}))
	}
	return out
}

func prerequisitesMet(terms []domain.PrereqTerm, have func(string) bool) bool {
	for _, t := range terms {
		if !t.SatisfiedBy(have) {
			return false
		}
	}
	return true
}
