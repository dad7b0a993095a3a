package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
	"github.com/plusplan/plusplan/internal/domain"
)

// plusplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func plusplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newProjectNewCmd is the interactive counterpart of "project add".
func newProjectNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a project interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive wizard needs a terminal (use 'project add' instead)")
			}

			var shortID, name, destination, start, participants, days string
			var green, publicEvent, food bool

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Short ID").
						Description("3-6 uppercase letters + 2-4 digits, e.g. BCN01").
						Value(&shortID),
					huh.NewInput().
						Title("Project name").
						Value(&name),
					huh.NewInput().
						Title("Destination").
						Placeholder("Barcelona, Spain").
						Value(&destination),
					huh.NewInput().
						Title("Start date").
						Placeholder("YYYY-MM-DD (optional)").
						Value(&start),
					huh.NewInput().
						Title("Duration (days)").
						Value(&days).
						Validate(func(s string) error {
							n, err := strconv.Atoi(strings.TrimSpace(s))
							if err != nil || n < 1 {
								return fmt.Errorf("enter a positive number of days")
							}
							return nil
						}),
					huh.NewInput().
						Title("Participants").
						Description("COUNTRY:COUNT pairs, e.g. SE:15,DE:10").
						Value(&participants).
						Validate(func(s string) error {
							_, err := parseParticipants(s)
							return err
						}),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Green travel (train/bus)?").Value(&green),
					huh.NewConfirm().Title("Public event planned?").Value(&publicEvent),
					huh.NewConfirm().Title("Participants prepare food?").Value(&food),
				),
			).WithTheme(plusplanHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			group, err := parseParticipants(participants)
			if err != nil {
				return err
			}
			duration, err := strconv.Atoi(strings.TrimSpace(days))
			if err != nil {
				return fmt.Errorf("invalid duration %q", days)
			}

			p := &domain.Project{
				ShortID:      strings.ToUpper(strings.TrimSpace(shortID)),
				Name:         strings.TrimSpace(name),
				Destination:  strings.TrimSpace(destination),
				DurationDays: duration,
				GreenTravel:  green,
				PublicEvent:  publicEvent,
				FoodPrepared: food,
				Participants: group,
			}
			if s := strings.TrimSpace(start); s != "" {
				startDate, err := time.Parse("2006-01-02", s)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", s, err)
				}
				p.StartDate = startDate
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}
}
