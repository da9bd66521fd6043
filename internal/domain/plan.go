package domain

import (
	"fmt"
	"time"
)

type ScheduledCourse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
	Filler  bool   `json:"filler,omitempty"`
}

// CourseSchedule is one planned semester. Year is the student's academic
// year number, not a calendar year.
type CourseSchedule struct {
	Term            Term              `json:"term"`
	Year            int               `json:"year"`
	Courses         []ScheduledCourse `json:"courses"`
	TotalCredits    int               `json:"total_credits"`
	CSCredits       int               `json:"cs_credits"`
	Warnings        []string          `json:"warnings,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

func (s CourseSchedule) Label() string {
	return fmt.Sprintf("%s Year %d", s.Term, s.Year)
}

func (s CourseSchedule) Codes() []string {
	out := make([]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		out = append(out, c.Code)
	}
	return out
}

func (s CourseSchedule) Contains(code string) bool {
	for _, c := range s.Courses {
		if c.Code == code {
			return true
		}
	}
	return false
}

// GraduationPlan is the aggregate planner result. A plan carrying a
// ChoiceRequest has no schedules and a zero success probability.
type GraduationPlan struct {
	Major                 Major            `json:"major"`
	Track                 string           `json:"track,omitempty"`
	TotalSemesters        int              `json:"total_semesters"`
	GraduationDate        string           `json:"graduation_date"`
	Schedules             []CourseSchedule `json:"schedules"`
	CompletedCourses      []string         `json:"completed_courses"`
	Outstanding           RequirementSet   `json:"outstanding,omitempty"`
	RemainingRequirements RequirementSet   `json:"remaining_requirements,omitempty"`
	Warnings              []string         `json:"warnings,omitempty"`
	Recommendations       []string         `json:"recommendations,omitempty"`
	SuccessProbability    float64          `json:"success_probability"`
	Risk                  RiskLevel        `json:"risk,omitempty"`
	CustomizationNotes    []string         `json:"customization_notes,omitempty"`
	ChoiceRequest         ChoiceRequest    `json:"choice_request,omitempty"`
}

func (p *GraduationPlan) NeedsChoices() bool {
	return len(p.ChoiceRequest) > 0
}

func (p *GraduationPlan) Status() PlanStatus {
	if p.NeedsChoices() {
		return PlanPendingChoices
	}
	return PlanFinal
}

// SemesterOf returns the index of the schedule containing code, or -1.
func (p *GraduationPlan) SemesterOf(code string) int {
	for i, s := range p.Schedules {
		if s.Contains(code) {
			return i
		}
	}
	return -1
}

// PlanSnapshot is a persisted plan together with the selections that
// produced it.
type PlanSnapshot struct {
	ID        string
	StudentID string
	Status    PlanStatus
	Selected  SelectedChoices
	Plan      GraduationPlan
	CreatedAt time.Time
}
