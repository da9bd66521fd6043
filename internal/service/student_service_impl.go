package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/repository"
	"github.com/google/uuid"
)

type studentService struct {
	students repository.StudentRepo
	catalog  *catalog.Catalog
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewStudentService(
	students repository.StudentRepo,
	cat *catalog.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) StudentService {
	return &studentService{
		students: students,
		catalog:  cat,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *studentService) Create(ctx context.Context, st *domain.Student) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"major": string(st.Profile.Major)}
	defer func() { observeUseCase(ctx, s.observer, "create-student", startedAt, err, fields) }()

	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "is required"}
	}
	st.Profile, err = s.normalizeProfile(st.Profile)
	if err != nil {
		return err
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		seq, err := repository.NewSQLiteSequenceRepo(tx).Next(ctx, repository.StudentSequence)
		if err != nil {
			return err
		}
		st.Seq = seq
		return repository.NewSQLiteStudentRepo(tx).Create(ctx, st)
	})
	fields["seq"] = st.Seq
	return err
}

func (s *studentService) Resolve(ctx context.Context, ref string) (*domain.Student, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if ref == "" {
		return nil, fmt.Errorf("student: %w", repository.ErrNotFound)
	}
	if seq, err := strconv.Atoi(ref); err == nil {
		return s.students.GetBySeq(ctx, seq)
	}
	return s.students.GetByID(ctx, ref)
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *studentService) Update(ctx context.Context, st *domain.Student) error {
	profile, err := s.normalizeProfile(st.Profile)
	if err != nil {
		return err
	}
	st.Profile = profile
	st.UpdatedAt = time.Now().UTC()
	return s.students.Update(ctx, st)
}

// AddCompleted appends codes to the completed list, normalizing them and
// skipping ones already recorded.
func (s *studentService) AddCompleted(ctx context.Context, id string, codes []string) (st *domain.Student, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"student": id}
	defer func() { observeUseCase(ctx, s.observer, "add-completed", startedAt, err, fields) }()

	normalized := catalog.NormalizeCodes(codes)
	if len(normalized) == 0 {
		return nil, ErrNoCourses
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStudentRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		added := 0
		for _, code := range normalized {
			if current.Profile.HasCompleted(code) {
				continue
			}
			current.Profile.CompletedCourses = append(current.Profile.CompletedCourses, code)
			added++
		}
		fields["added"] = added
		current.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		st = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}

// normalizeProfile canonicalizes enums, course codes and track aliases. An
// unanswered summer preference stays unanswered so it can still be asked.
func (s *studentService) normalizeProfile(p domain.StudentProfile) (domain.StudentProfile, error) {
	summer := p.SummerCourses
	out := p.WithDefaults()
	out.SummerCourses = summer
	if err := out.Validate(); err != nil {
		return p, err
	}
	out.CompletedCourses = catalog.NormalizeCodes(out.CompletedCourses)
	if out.Track != "" {
		if name, ok := s.catalog.ResolveTrack(out.Major, out.Track); ok {
			out.Track = name
		}
	}
	return out, nil
}
