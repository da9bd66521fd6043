package domain

import (
	"fmt"
	"strings"
	"time"
)

// StudentProfile is the planner input. It is treated as immutable for the
// duration of a planning call.
type StudentProfile struct {
	Major            Major
	Track            string
	CompletedCourses []string
	CurrentYear      int
	CurrentTerm      Term
	SummerCourses    *bool
	CreditLoad       CreditLoad
	GraduationGoal   GraduationGoal
}

// Student is a persisted profile. Seq is the short number shown by the CLI.
type Student struct {
	ID        string
	Seq       int
	Name      string
	Profile   StudentProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidationError reports a malformed profile field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Message)
}

// SummerAllowed defaults to true when the student never answered.
func (p StudentProfile) SummerAllowed() bool {
	if p.SummerCourses != nil {
		return *p.SummerCourses
	}
	return true
}

// WithDefaults returns a copy with optional preferences filled in. Required
// fields are never guessed.
func (p StudentProfile) WithDefaults() StudentProfile {
	out := p
	if m, err := ParseMajor(string(p.Major)); err == nil {
		out.Major = m
	}
	if t, err := ParseTerm(string(p.CurrentTerm)); err == nil {
		out.CurrentTerm = t
	}
	if l, err := ParseCreditLoad(string(p.CreditLoad)); err == nil {
		out.CreditLoad = l
	}
	if g, err := ParseGraduationGoal(string(p.GraduationGoal)); err == nil {
		out.GraduationGoal = g
	}
	if out.CreditLoad == "" {
		out.CreditLoad = LoadStandard
	}
	if out.GraduationGoal == "" {
		out.GraduationGoal = GoalFourYear
	}
	if out.SummerCourses == nil {
		allowed := true
		out.SummerCourses = &allowed
	}
	out.Track = strings.TrimSpace(out.Track)
	out.CompletedCourses = append([]string(nil), p.CompletedCourses...)
	return out
}

// Validate fails fast on missing or out-of-range required fields.
func (p StudentProfile) Validate() error {
	if p.Major == "" {
		return &ValidationError{Field: "major", Message: "is required"}
	}
	if _, err := ParseMajor(string(p.Major)); err != nil {
		return &ValidationError{Field: "major", Message: err.Error()}
	}
	if p.CurrentYear < 1 || p.CurrentYear > 4 {
		return &ValidationError{Field: "current_year", Message: fmt.Sprintf("must be between 1 and 4, got %d", p.CurrentYear)}
	}
	if _, err := ParseTerm(string(p.CurrentTerm)); err != nil {
		return &ValidationError{Field: "current_term", Message: err.Error()}
	}
	if p.CreditLoad != "" {
		if _, err := ParseCreditLoad(string(p.CreditLoad)); err != nil {
			return &ValidationError{Field: "credit_load", Message: err.Error()}
		}
	}
	if p.GraduationGoal != "" {
		if _, err := ParseGraduationGoal(string(p.GraduationGoal)); err != nil {
			return &ValidationError{Field: "graduation_goal", Message: err.Error()}
		}
	}
	return nil
}

// HasCompleted reports whether code is in the completed list. Codes are
// expected to be normalized already.
func (p StudentProfile) HasCompleted(code string) bool {
	for _, c := range p.CompletedCourses {
		if c == code {
			return true
		}
	}
	return false
}
