package contract

import "github.com/plusplan/plusplan/internal/domain"

// BudgetStatusResponse compares a project's saved allocation against its
// recorded expenses, category by category.
type BudgetStatusResponse struct {
	Project    *domain.Project
	Allocation *domain.BudgetAllocation
	Rows       []domain.CategorySpend

	TotalAllocated int
	TotalSpent     int
	TotalRemaining int
}

// OverBudgetCategories returns the categories whose spend exceeds their
// allocation, in allocation order.
func (r *BudgetStatusResponse) OverBudgetCategories() []domain.BudgetCategory {
	var over []domain.BudgetCategory
	for _, row := range r.Rows {
		if row.OverBudget {
			over = append(over, row.Category)
		}
	}
	return over
}
