package main

import (
	"fmt"
	"os"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/cli"
	"github.com/boilerai/boilerplan/internal/config"
	"github.com/boilerai/boilerplan/internal/db"
	"github.com/boilerai/boilerplan/internal/planner"
	"github.com/boilerai/boilerplan/internal/repository"
	"github.com/boilerai/boilerplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	pl := planner.New(cat, planner.WithPolicy(cfg.Policy))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	studentRepo := repository.NewSQLiteStudentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Students: service.NewStudentService(studentRepo, cat, uow, observers...),
		Plans:    service.NewPlanService(pl, cat, planRepo, uow, observers...),
		Catalog:  service.NewCatalogService(cat),
		Import:   service.NewImportService(cat, uow, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
