package formatter

import (
	"fmt"
	"strings"

	"github.com/plusplan/plusplan/internal/allocator"
	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/grant"
)

// FormatGrant renders the unit-cost grant estimate with its per-country
// travel breakdown.
func FormatGrant(out *grant.Output) string {
	var b strings.Builder

	headers := []string{"COUNTRY", "PAX", "KM", "BAND", "PER PERSON", "TOTAL"}
	rows := make([][]string, 0, len(out.Travel))
	for _, ct := range out.Travel {
		perPerson := Euro(ct.PerPerson)
		if ct.GreenBonus > 0 {
			perPerson += StyleGreen.Render(fmt.Sprintf(" (+%d green)", ct.GreenBonus))
		}
		rows = append(rows, []string{
			StyleBlue.Render(ct.Country),
			fmt.Sprintf("%d", ct.Participants),
			fmt.Sprintf("%d", ct.DistanceKm),
			Dim(ct.Band),
			perPerson,
			Euro(ct.Total),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Travel          "), Euro(out.Breakdown.Travel)))
	b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Per-diem        "), Euro(out.Breakdown.PerDiem),
		Dim(fmt.Sprintf("(%d pax × %s/day)", out.Participants, Euro(out.PerDiemRate)))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Org. support    "), Euro(out.Breakdown.Organizational)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Total grant     "), StyleGreen.Render(Euro(out.Total))))

	return RenderBox("Grant estimate", b.String())
}

// FormatAllocation renders the category split, applied adjustments, and
// phase sub-allocations.
func FormatAllocation(alloc *allocator.Allocation) string {
	var b strings.Builder

	headers := []string{"CATEGORY", "AMOUNT", "PHASES"}
	rows := make([][]string, 0, len(domain.BudgetCategories))
	for _, cat := range domain.BudgetCategories {
		var phases []string
		for _, ph := range alloc.Phases[cat] {
			phases = append(phases, fmt.Sprintf("%s %s", Dim(ph.Name), Euro(ph.Amount)))
		}
		amount := Euro(alloc.Amounts[cat])
		if alloc.Amounts[cat] < 0 {
			amount = StyleRed.Render(amount)
		}
		rows = append(rows, []string{string(cat), amount, strings.Join(phases, "  ")})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Total"), Euro(alloc.Total)))

	if len(alloc.Justifications) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Adjustments"))
		b.WriteString("\n")
		for _, j := range alloc.Justifications {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("•"), j))
		}
	}

	return RenderBox("Budget allocation", b.String())
}

// FormatPlan renders the full pipeline response.
func FormatPlan(resp *contract.BudgetPlanResponse) string {
	var b strings.Builder

	b.WriteString(FormatGrant(resp.Grant))
	b.WriteString("\n")
	if resp.BudgetSource == contract.BudgetSourceOverride {
		b.WriteString(Dim(fmt.Sprintf("Allocating coordinator override of %s instead of the computed grant.", Euro(resp.Allocation.Total))))
		b.WriteString("\n")
	}
	b.WriteString(FormatAllocation(resp.Allocation))
	b.WriteString("\n")
	b.WriteString(FormatRequirements(resp.Requirements))

	return b.String()
}
