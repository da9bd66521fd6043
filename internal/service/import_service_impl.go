package service

import (
	"context"
	"fmt"
	"time"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/importer"
	"github.com/boilerai/boilerplan/internal/repository"
)

type importService struct {
	catalog  *catalog.Catalog
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(cat *catalog.Catalog, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		catalog:  cat,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportRoster(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadRosterSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema writes every student or none of them.
func (s *importService) importSchema(ctx context.Context, schema *importer.RosterSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"students": len(schema.Students)}
	defer func() { observeUseCase(ctx, s.observer, "import-roster", startedAt, err, fields) }()

	if errs := importer.ValidateRosterSchema(schema, s.catalog); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	imported := importer.Convert(schema, s.catalog)

	result = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		seqs := repository.NewSQLiteSequenceRepo(tx)
		students := repository.NewSQLiteStudentRepo(tx)
		selections := repository.NewSQLiteSelectionRepo(tx)

		for _, in := range imported {
			seq, err := seqs.Next(ctx, repository.StudentSequence)
			if err != nil {
				return err
			}
			in.Student.Seq = seq
			if err := students.Create(ctx, in.Student); err != nil {
				return fmt.Errorf("creating student %q: %w", in.Student.Name, err)
			}
			if len(in.Selections) > 0 {
				if err := selections.Save(ctx, in.Student.ID, in.Selections); err != nil {
					return fmt.Errorf("saving selections for %q: %w", in.Student.Name, err)
				}
				result.SelectionCount += len(in.Selections)
			}
			result.Students = append(result.Students, in.Student)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["selections"] = result.SelectionCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
