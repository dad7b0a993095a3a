package domain

import "time"

// BudgetAllocation is a persisted allocation run for a project: the
// budget split across categories plus the contextual adjustments that
// were applied when it was computed.
type BudgetAllocation struct {
	ProjectID      string
	Total          int
	Amounts        map[BudgetCategory]int
	Justifications []string
	ComputedAt     time.Time
}

// Sum returns the total of all category amounts.
func (a *BudgetAllocation) Sum() int {
	sum := 0
	for _, amount := range a.Amounts {
		sum += amount
	}
	return sum
}
