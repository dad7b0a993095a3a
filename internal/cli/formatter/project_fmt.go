package formatter

import (
	"fmt"
	"strings"

	"github.com/plusplan/plusplan/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "DESTINATION", "DAYS", "PAX", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			p.Destination,
			fmt.Sprintf("%d", p.DurationDays),
			fmt.Sprintf("%d", p.Participants.Total()),
			StatusPill(p.Status),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a project detail card: core fields, the
// participant breakdown, and the activity program.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  %s", p.ShortID, p.Name)))
	b.WriteString("\n")
	writeField(&b, "Destination", p.Destination)
	writeField(&b, "Start", HumanDate(p.StartDate))
	writeField(&b, "Duration", fmt.Sprintf("%d days", p.DurationDays))
	writeField(&b, "Status", StatusPill(p.Status))
	if p.TotalBudget > 0 {
		writeField(&b, "Budget override", Euro(p.TotalBudget))
	}
	var flags []string
	if p.GreenTravel {
		flags = append(flags, "green travel")
	}
	if p.PublicEvent {
		flags = append(flags, "public event")
	}
	if p.FoodPrepared {
		flags = append(flags, "food prepared")
	}
	if len(flags) > 0 {
		writeField(&b, "Flags", strings.Join(flags, ", "))
	}

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Participants (%d)", p.Participants.Total())))
	b.WriteString("\n")
	for _, country := range p.Participants.Countries() {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleBlue.Render(country), fmt.Sprintf("%d", p.Participants[country])))
	}

	if len(p.Activities) > 0 {
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("Activities (%d)", len(p.Activities))))
		b.WriteString("\n")
		for _, a := range p.Activities {
			tag := Dim(string(a.Type))
			if a.Outdoor {
				tag += " " + StyleGreen.Render("outdoor")
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(a.Name), tag))
		}
	}

	return RenderBox("", b.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-16s", label)), value))
}
