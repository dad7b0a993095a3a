package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
	"github.com/plusplan/plusplan/internal/domain"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage program activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var name, activityType string
	var outdoor bool

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add an activity to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			a := &domain.Activity{
				ProjectID: projectID,
				Name:      name,
				Type:      domain.ActivityType(activityType),
				Outdoor:   outdoor,
			}
			if err := app.Projects.AddActivity(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Added activity %s (%s)\n", a.Name, a.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&activityType, "type", "workshop",
		"Activity type (workshop|cooking_workshop|public_event|excursion|sports|discussion|presentation)")
	cmd.Flags().BoolVar(&outdoor, "outdoor", false, "Activity takes place outdoors")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			if len(p.Activities) == 0 {
				fmt.Println("No activities yet.")
				return nil
			}

			headers := []string{"ID", "NAME", "TYPE", "OUTDOOR"}
			rows := make([][]string, 0, len(p.Activities))
			for _, a := range p.Activities {
				outdoor := "-"
				if a.Outdoor {
					outdoor = "yes"
				}
				rows = append(rows, []string{formatter.TruncID(a.ID), a.Name, string(a.Type), outdoor})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT ACTIVITY",
		Short: "Remove an activity (by ID prefix)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			var activityID string
			for _, a := range p.Activities {
				if a.ID == args[1] || len(args[1]) >= 4 && len(a.ID) >= len(args[1]) && a.ID[:len(args[1])] == args[1] {
					if activityID != "" {
						return fmt.Errorf("activity ID prefix %q is ambiguous", args[1])
					}
					activityID = a.ID
				}
			}
			if activityID == "" {
				return fmt.Errorf("activity not found: %q", args[1])
			}

			if err := app.Projects.RemoveActivity(ctx, activityID); err != nil {
				return err
			}
			fmt.Println("Activity removed.")
			return nil
		},
	}
}
