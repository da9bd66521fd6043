package testutil

import (
	"time"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/google/uuid"
)

// Student options
type StudentOption func(*domain.Student)

func WithMajor(m domain.Major) StudentOption {
	return func(s *domain.Student) {
		s.Profile.Major = m
	}
}

func WithTrack(track string) StudentOption {
	return func(s *domain.Student) {
		s.Profile.Track = track
	}
}

func WithCompleted(codes ...string) StudentOption {
	return func(s *domain.Student) {
		s.Profile.CompletedCourses = append([]string(nil), codes...)
	}
}

func WithStanding(year int, term domain.Term) StudentOption {
	return func(s *domain.Student) {
		s.Profile.CurrentYear = year
		s.Profile.CurrentTerm = term
	}
}

func WithGoal(g domain.GraduationGoal) StudentOption {
	return func(s *domain.Student) {
		s.Profile.GraduationGoal = g
	}
}

func WithCreditLoad(l domain.CreditLoad) StudentOption {
	return func(s *domain.Student) {
		s.Profile.CreditLoad = l
	}
}

func WithSummer(allowed bool) StudentOption {
	return func(s *domain.Student) {
		s.Profile.SummerCourses = &allowed
	}
}

func WithSeq(seq int) StudentOption {
	return func(s *domain.Student) {
		s.Seq = seq
	}
}

// NewTestStudent returns a first-year CS student starting in the fall with
// nothing completed.
func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	now := time.Now().UTC()
	s := &domain.Student{
		ID:   uuid.New().String(),
		Name: name,
		Profile: domain.StudentProfile{
			Major:          domain.MajorComputerScience,
			CurrentYear:    1,
			CurrentTerm:    domain.TermFall,
			CreditLoad:     domain.LoadStandard,
			GraduationGoal: domain.GoalFourYear,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestSnapshot wraps plan in a snapshot for studentID.
func NewTestSnapshot(studentID string, plan domain.GraduationPlan, selected domain.SelectedChoices) *domain.PlanSnapshot {
	return &domain.PlanSnapshot{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Status:    plan.Status(),
		Selected:  selected,
		Plan:      plan,
		CreatedAt: time.Now().UTC(),
	}
}
