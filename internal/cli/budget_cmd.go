package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compute grants and budget allocations",
	}

	cmd.AddCommand(
		newBudgetGrantCmd(app),
		newBudgetPlanCmd(app),
		newBudgetStatusCmd(app),
	)

	return cmd
}

func newBudgetGrantCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grant PROJECT",
		Short: "Estimate the unit-cost grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			out, err := app.Plans.EstimateGrant(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatGrant(out))
			return nil
		},
	}
}

func newBudgetPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan PROJECT",
		Short: "Run the full budget pipeline and save the allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			resp, err := app.Plans.Plan(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatPlan(resp))
			return nil
		},
	}
}

func newBudgetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PROJECT",
		Short: "Compare recorded expenses against the saved allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			resp, err := app.Expenses.Status(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBudgetStatus(resp))
			return nil
		},
	}
}
