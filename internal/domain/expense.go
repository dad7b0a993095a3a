package domain

import "time"

// Expense is one logged spend entry against a project's budget allocation.
type Expense struct {
	ID          string
	ProjectID   string
	Category    BudgetCategory
	Amount      int // whole EUR
	Description string
	IncurredOn  time.Time
	CreatedAt   time.Time
}

// CategorySpend summarizes spend against the allocated amount for one
// category.
type CategorySpend struct {
	Category   BudgetCategory
	Allocated  int
	Spent      int
	Remaining  int
	OverBudget bool
}
