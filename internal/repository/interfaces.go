package repository

import (
	"context"

	"github.com/boilerai/boilerplan/internal/domain"
)

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetBySeq(ctx context.Context, seq int) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id string) error
}

// SelectionRepo stores the choices a student has made so far, keyed by
// choice key. Saving a key replaces its previous codes.
type SelectionRepo interface {
	Get(ctx context.Context, studentID string) (domain.SelectedChoices, error)
	Save(ctx context.Context, studentID string, selected domain.SelectedChoices) error
	Clear(ctx context.Context, studentID string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.PlanSnapshot) error
	GetByID(ctx context.Context, id string) (*domain.PlanSnapshot, error)
	Latest(ctx context.Context, studentID string) (*domain.PlanSnapshot, error)
	ListByStudent(ctx context.Context, studentID string, limit int) ([]*domain.PlanSnapshot, error)
}

type SequenceRepo interface {
	Next(ctx context.Context, name string) (int, error)
}
