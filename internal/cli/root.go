// Package cli wires the cobra command tree to the service layer.
package cli

import (
	"github.com/plusplan/plusplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Plans    service.PlanService
	Expenses service.ExpenseService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal; the project
	// wizard refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "plusplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "plusplan",
		Short: "Erasmus+ youth exchange budget planner",
	}

	root.AddCommand(
		newProjectCmd(app),
		newActivityCmd(app),
		newBudgetCmd(app),
		newRequirementsCmd(app),
		newExpenseCmd(app),
	)

	return root
}
