package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
)

func newRequirementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "requirements PROJECT",
		Short: "Report visa, insurance, permit, and accessibility requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Plans.Requirements(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatRequirements(report))
			return nil
		},
	}
}
