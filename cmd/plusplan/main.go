package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/plusplan/plusplan/internal/cli"
	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/repository"
	"github.com/plusplan/plusplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.plusplan/plusplan.db
	dbPath := os.Getenv("PLUSPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".plusplan", "plusplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	allocationRepo := repository.NewSQLiteAllocationRepo(database)
	expenseRepo := repository.NewSQLiteExpenseRepo(database)

	// Unit of work for transactional imports and allocation saves
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, activityRepo),
		Plans:    service.NewPlanService(projectRepo, allocationRepo, uow),
		Expenses: service.NewExpenseService(projectRepo, expenseRepo, allocationRepo),
		Import:   service.NewImportService(uow),
	}

	// Detect interactive terminal for the project wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
