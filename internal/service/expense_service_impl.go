package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/repository"
)

type expenseService struct {
	projects    repository.ProjectRepo
	expenses    repository.ExpenseRepo
	allocations repository.AllocationRepo
}

func NewExpenseService(projects repository.ProjectRepo, expenses repository.ExpenseRepo, allocations repository.AllocationRepo) ExpenseService {
	return &expenseService{projects: projects, expenses: expenses, allocations: allocations}
}

func (s *expenseService) Add(ctx context.Context, e *domain.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if !domain.ValidBudgetCategories[string(e.Category)] {
		return fmt.Errorf("unknown budget category %q", e.Category)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive, got %d", e.Amount)
	}
	if e.IncurredOn.IsZero() {
		e.IncurredOn = time.Now().UTC()
	}
	e.CreatedAt = time.Now().UTC()

	if _, err := s.projects.GetByID(ctx, e.ProjectID); err != nil {
		return err
	}
	return s.expenses.Create(ctx, e)
}

func (s *expenseService) ListByProject(ctx context.Context, projectID string) ([]*domain.Expense, error) {
	return s.expenses.ListByProject(ctx, projectID)
}

// Status reports spend against the saved allocation, one row per category
// in allocation order. A project must be planned before it has a status.
func (s *expenseService) Status(ctx context.Context, projectID string) (*contract.BudgetStatusResponse, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	alloc, err := s.allocations.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("no saved budget plan for %s (run budget plan first): %w", p.ShortID, err)
	}
	spent, err := s.expenses.TotalsByCategory(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp := &contract.BudgetStatusResponse{Project: p, Allocation: alloc}
	for _, category := range domain.BudgetCategories {
		allocated := alloc.Amounts[category]
		used := spent[category]
		resp.Rows = append(resp.Rows, domain.CategorySpend{
			Category:   category,
			Allocated:  allocated,
			Spent:      used,
			Remaining:  allocated - used,
			OverBudget: used > allocated,
		})
		resp.TotalAllocated += allocated
		resp.TotalSpent += used
	}
	resp.TotalRemaining = resp.TotalAllocated - resp.TotalSpent
	return resp, nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.expenses.Delete(ctx, id)
}
