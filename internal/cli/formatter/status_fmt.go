package formatter

import (
	"fmt"

	"github.com/plusplan/plusplan/internal/contract"
)

// FormatBudgetStatus renders spend against the saved allocation.
func FormatBudgetStatus(resp *contract.BudgetStatusResponse) string {
	headers := []string{"CATEGORY", "ALLOCATED", "SPENT", "REMAINING"}
	rows := make([][]string, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		style := SpendColor(row.Spent, row.Allocated)
		remaining := style.Render(Euro(row.Remaining))
		rows = append(rows, []string{
			string(row.Category),
			Euro(row.Allocated),
			Euro(row.Spent),
			remaining,
		})
	}

	table := RenderTable(headers, rows)
	summary := fmt.Sprintf("\n%s %s of %s spent, %s remaining\n",
		Bold("Total:"),
		Euro(resp.TotalSpent),
		Euro(resp.TotalAllocated),
		SpendColor(resp.TotalSpent, resp.TotalAllocated).Render(Euro(resp.TotalRemaining)))

	title := fmt.Sprintf("Budget status — %s", resp.Project.ShortID)
	return RenderBox(title, table+summary)
}
