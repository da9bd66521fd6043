package planner

import (
	"fmt"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
)

const notedCourseLimit = 5

// customizationNotes explains how the profile shaped the plan.
func customizationNotes(profile domain.StudentProfile, track string, schedules []domain.CourseSchedule) []string {
	var notes []string

	if n := len(profile.CompletedCourses); n > 0 {
		shown := profile.CompletedCourses
		suffix := ""
		if n > notedCourseLimit {
			shown = shown[:notedCourseLimit]
			suffix = "..."
		}
		notes = append(notes, fmt.Sprintf("Plan customized based on %d completed courses: %s%s", n, strings.Join(shown, ", "), suffix))
	}
	if profile.GraduationGoal != domain.GoalFourYear {
		notes = append(notes, fmt.Sprintf("Accelerated timeline for %s graduation", profile.GraduationGoal.Label()))
	}
	if profile.CreditLoad != domain.LoadStandard {
		notes = append(notes, fmt.Sprintf("Adjusted for %s course load preference", profile.CreditLoad))
	}

	summers := 0
	for _, s := range schedules {
		if s.Term == domain.TermSummer {
			summers++
		}
	}
	if summers > 0 {
		notes = append(notes, fmt.Sprintf("Includes %d summer semester(s) for acceleration", summers))
	}
	if track != "" {
		notes = append(notes, fmt.Sprintf("Optimized for %s track requirements", track))
	}
	return notes
}
