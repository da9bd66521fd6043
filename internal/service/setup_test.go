package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/planner"
	"github.com/boilerai/boilerplan/internal/repository"
	"github.com/boilerai/boilerplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db         *sql.DB
	uow        db.UnitOfWork
	catalog    *catalog.Catalog
	planner    *planner.Planner
	students   StudentService
	plans      PlanService
	imports    ImportService
	selections repository.SelectionRepo
	snapshots  repository.PlanRepo
	studentDB  repository.StudentRepo
}

func setupServices(t *testing.T, observers ...UseCaseObserver) fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat, err := catalog.Default()
	require.NoError(t, err)

	uow := testutil.NewTestUoW(database)
	pl := planner.New(cat)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	return fixture{
		db:         database,
		uow:        uow,
		catalog:    cat,
		planner:    pl,
		students:   NewStudentService(studentRepo, cat, uow, observers...),
		plans:      NewPlanService(pl, cat, planRepo, uow, observers...),
		imports:    NewImportService(cat, uow, observers...),
		selections: repository.NewSQLiteSelectionRepo(database),
		snapshots:  planRepo,
		studentDB:  studentRepo,
	}
}

func (f fixture) addStudent(t *testing.T, opts ...testutil.StudentOption) *domain.Student {
	t.Helper()
	s := testutil.NewTestStudent("Student", opts...)
	s.ID = ""
	require.NoError(t, f.students.Create(context.Background(), s))
	return s
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
