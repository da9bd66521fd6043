package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/planner"
	"github.com/boilerai/boilerplan/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	planner  *planner.Planner
	catalog  *catalog.Catalog
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	pl *planner.Planner,
	cat *catalog.Catalog,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		planner:  pl,
		catalog:  cat,
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate plans from the student's profile and saved selections and
// stores the result as a new snapshot.
func (s *planService) Generate(ctx context.Context, studentID string) (snap *domain.PlanSnapshot, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"student": studentID}
	defer func() { observeUseCase(ctx, s.observer, "generate-plan", startedAt, err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		student, err := repository.NewSQLiteStudentRepo(tx).GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		snap, err = s.generateTx(ctx, tx, student, fields)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Choose saves selections on top of earlier ones and regenerates the plan.
func (s *planService) Choose(ctx context.Context, studentID string, selected domain.SelectedChoices) (out *ChoiceOutcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"student": studentID, "keys": len(selected)}
	defer func() { observeUseCase(ctx, s.observer, "choose", startedAt, err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		student, err := repository.NewSQLiteStudentRepo(tx).GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		picks := normalizePicks(selected)
		snap, err := s.applyTx(ctx, tx, student, picks, fields)
		if err != nil {
			return err
		}
		out = &ChoiceOutcome{Picked: picks, Snapshot: snap}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChooseFromText matches free text against the choices still pending for
// the student. When nothing matches, no state changes and the outcome has no
// snapshot.
func (s *planService) ChooseFromText(ctx context.Context, studentID, text string) (out *ChoiceOutcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"student": studentID}
	defer func() { observeUseCase(ctx, s.observer, "choose-from-text", startedAt, err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		student, err := repository.NewSQLiteStudentRepo(tx).GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		saved, err := repository.NewSQLiteSelectionRepo(tx).Get(ctx, studentID)
		if err != nil {
			return err
		}
		request, err := s.planner.ResolveChoicesNeeded(student.Profile, saved)
		if err != nil {
			return err
		}
		fields["pending"] = len(request)

		picks := planner.ResolvePendingChoices(text, request)
		fields["picked"] = len(picks)
		if len(picks) == 0 {
			out = &ChoiceOutcome{Picked: picks}
			return nil
		}
		snap, err := s.applyTx(ctx, tx, student, picks, fields)
		if err != nil {
			return err
		}
		out = &ChoiceOutcome{Picked: picks, Snapshot: snap}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *planService) Pending(ctx context.Context, studentID string) (domain.ChoiceRequest, error) {
	var request domain.ChoiceRequest
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		student, err := repository.NewSQLiteStudentRepo(tx).GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		saved, err := repository.NewSQLiteSelectionRepo(tx).Get(ctx, studentID)
		if err != nil {
			return err
		}
		request, err = s.planner.ResolveChoicesNeeded(student.Profile, saved)
		return err
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *planService) ResetChoices(ctx context.Context, studentID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteStudentRepo(tx).GetByID(ctx, studentID); err != nil {
			return err
		}
		return repository.NewSQLiteSelectionRepo(tx).Clear(ctx, studentID)
	})
}

func (s *planService) History(ctx context.Context, studentID string, limit int) ([]*domain.PlanSnapshot, error) {
	return s.plans.ListByStudent(ctx, studentID, limit)
}

// applyTx stores picks and regenerates. A track pick is written to the
// profile rather than kept as a selection.
func (s *planService) applyTx(ctx context.Context, tx db.DBTX, student *domain.Student, picks domain.SelectedChoices, fields map[string]any) (*domain.PlanSnapshot, error) {
	rest := make(domain.SelectedChoices, len(picks))
	for k, v := range picks {
		rest[k] = v
	}
	if names, ok := rest[domain.TrackChoiceKey]; ok {
		delete(rest, domain.TrackChoiceKey)
		if len(names) > 0 {
			name, ok := s.catalog.ResolveTrack(student.Profile.Major, names[0])
			if !ok {
				return nil, &domain.ValidationError{Field: "track", Message: fmt.Sprintf("unknown track %q for %s", names[0], student.Profile.Major.DisplayName())}
			}
			student.Profile.Track = name
			student.UpdatedAt = time.Now().UTC()
			if err := repository.NewSQLiteStudentRepo(tx).Update(ctx, student); err != nil {
				return nil, err
			}
			fields["track"] = name
		}
	}
	if len(rest) > 0 {
		if err := repository.NewSQLiteSelectionRepo(tx).Save(ctx, student.ID, rest); err != nil {
			return nil, err
		}
	}
	return s.generateTx(ctx, tx, student, fields)
}

func (s *planService) generateTx(ctx context.Context, tx db.DBTX, student *domain.Student, fields map[string]any) (*domain.PlanSnapshot, error) {
	selected, err := repository.NewSQLiteSelectionRepo(tx).Get(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planner.CreatePlan(student.Profile, selected)
	if err != nil {
		return nil, fmt.Errorf("planning for student #%d: %w", student.Seq, err)
	}

	snap := &domain.PlanSnapshot{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		Status:    plan.Status(),
		Selected:  selected,
		Plan:      *plan,
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.NewSQLitePlanRepo(tx).Create(ctx, snap); err != nil {
		return nil, err
	}
	fields["status"] = string(snap.Status)
	fields["semesters"] = plan.TotalSemesters
	fields["pending"] = len(plan.ChoiceRequest)
	return snap, nil
}

// normalizePicks canonicalizes course codes. Track values are names and
// pass through trimmed.
func normalizePicks(selected domain.SelectedChoices) domain.SelectedChoices {
	out := make(domain.SelectedChoices, len(selected))
	for key, codes := range selected {
		key = strings.TrimSpace(key)
		if key == domain.TrackChoiceKey {
			var names []string
			for _, c := range codes {
				if c = strings.TrimSpace(c); c != "" {
					names = append(names, c)
				}
			}
			out[key] = names
			continue
		}
		out[key] = catalog.NormalizeCodes(codes)
	}
	return out
}
