package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage exchange projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectNewCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectParticipantsCmd(app),
		newProjectArchiveCmd(app),
		newProjectUnarchiveCmd(app),
		newProjectRemoveCmd(app),
		newProjectImportCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var shortID, name, destination, start, participants string
	var duration, budget int
	var green, publicEvent, food bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new exchange project",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := parseParticipants(participants)
			if err != nil {
				return err
			}

			p := &domain.Project{
				ShortID:      strings.ToUpper(shortID),
				Name:         name,
				Destination:  destination,
				DurationDays: duration,
				TotalBudget:  budget,
				GreenTravel:  green,
				PublicEvent:  publicEvent,
				FoodPrepared: food,
				Participants: group,
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s] — %d participants to %s\n",
				p.Name, p.ShortID, p.Participants.Total(), p.Destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. BCN01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&destination, "dest", "", `Destination, e.g. "Barcelona, Spain"`)
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "days", 0, "Program duration in days")
	cmd.Flags().StringVar(&participants, "participants", "", "Participant groups, e.g. SE:15,DE:10")
	cmd.Flags().IntVar(&budget, "budget", 0, "Total budget override in euro (default: computed grant)")
	cmd.Flags().BoolVar(&green, "green", false, "Participants use green travel (train/bus)")
	cmd.Flags().BoolVar(&publicEvent, "public-event", false, "Program includes a public event")
	cmd.Flags().BoolVar(&food, "food-prepared", false, "Participants prepare food themselves")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
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
			fmt.Printf("%s\n", formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var shortID, name, destination, start, status string
	var duration, budget int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd.Flags(), "id", "name", "dest", "start", "days", "budget", "status") {
				return fmt.Errorf("nothing to update: pass at least one flag")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("id") {
				p.ShortID = strings.ToUpper(shortID)
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("dest") {
				p.Destination = destination
				p.DestinationCity, p.DestinationCountry = "", ""
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}
			if cmd.Flags().Changed("days") {
				p.DurationDays = duration
			}
			if cmd.Flags().Changed("budget") {
				p.TotalBudget = budget
			}
			if cmd.Flags().Changed("status") {
				p.Status = domain.ProjectStatus(status)
			}
			if p.DestinationCity == "" && p.DestinationCountry == "" {
				p.DestinationCity, p.DestinationCountry = geo.SplitDestination(p.Destination)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&destination, "dest", "", "Destination")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "days", 0, "Program duration in days")
	cmd.Flags().IntVar(&budget, "budget", 0, "Total budget override in euro")
	cmd.Flags().StringVar(&status, "status", "", "Project status (draft|active|done|archived)")

	return cmd
}

func newProjectParticipantsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "participants ID GROUPS",
		Short: "Replace the participant groups (e.g. SE:15,DE:10)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			group, err := parseParticipants(args[1])
			if err != nil {
				return err
			}
			if err := app.Projects.SetParticipants(ctx, projectID, group); err != nil {
				return err
			}
			fmt.Printf("Set %d participants across %d countries\n",
				domain.ParticipantGroup(group).Total(), len(group))
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, projectID); err != nil {
				return err
			}
			fmt.Println("Project archived.")
			return nil
		},
	}
}

func newProjectUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Restore an archived project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Unarchive(ctx, projectID); err != nil {
				return err
			}
			fmt.Println("Project restored.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and all its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Println("Project deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if not archived")
	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProject(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported project %s [%s]: %d countries, %d activities\n",
				result.Project.Name, result.Project.ShortID,
				result.CountryCount, result.ActivityCount)
			return nil
		},
	}
}
