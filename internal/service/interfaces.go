package service

import (
	"context"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/importer"
)

type StudentService interface {
	Create(ctx context.Context, s *domain.Student) error
	// Resolve accepts a student's seq number ("3", "#3") or full ID.
	Resolve(ctx context.Context, ref string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	AddCompleted(ctx context.Context, id string, codes []string) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult lists the students created by a roster import, in file order.
type ImportResult struct {
	Students       []*domain.Student
	SelectionCount int
}

type ImportService interface {
	ImportRoster(ctx context.Context, filePath string) (*ImportResult, error)
	ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema) (*ImportResult, error)
}

// ChoiceOutcome is the result of applying selections: what was picked this
// round and the plan regenerated from every saved selection.
type ChoiceOutcome struct {
	Picked   domain.SelectedChoices
	Snapshot *domain.PlanSnapshot
}

type PlanService interface {
	Generate(ctx context.Context, studentID string) (*domain.PlanSnapshot, error)
	Choose(ctx context.Context, studentID string, selected domain.SelectedChoices) (*ChoiceOutcome, error)
	ChooseFromText(ctx context.Context, studentID, text string) (*ChoiceOutcome, error)
	Pending(ctx context.Context, studentID string) (domain.ChoiceRequest, error)
	ResetChoices(ctx context.Context, studentID string) error
	History(ctx context.Context, studentID string, limit int) ([]*domain.PlanSnapshot, error)
}

// CourseDetail is a course together with its place in the prerequisite
// graph.
type CourseDetail struct {
	Course        domain.CourseRecord
	Prerequisites []domain.PrereqTerm
	Chain         []string
	Unlocks       []string
	Tree          []PrereqLine
}

// PrereqLine is one row of a prerequisite tree in depth-first order. Depth 0
// rows are the course's own prerequisite terms. Only the first alternative
// of a term is expanded, and a course is expanded once.
type PrereqLine struct {
	Codes []string
	Depth int
	Last  bool
	Note  string
}

type CatalogService interface {
	ListMajors(ctx context.Context) []domain.Major
	ListCourses(ctx context.Context, dept string) []domain.CourseRecord
	GetCourse(ctx context.Context, code string) (*CourseDetail, error)
	ListTracks(ctx context.Context, major string) ([]domain.ChoiceOption, error)
}
