package service

import (
	"context"
	"testing"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/repository"
	"github.com/plusplan/plusplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpenseFixture(t *testing.T) (ExpenseService, PlanService, ProjectService) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	activities := repository.NewSQLiteActivityRepo(db)
	allocations := repository.NewSQLiteAllocationRepo(db)
	expenses := repository.NewSQLiteExpenseRepo(db)
	return NewExpenseService(projects, expenses, allocations),
		NewPlanService(projects, allocations, testutil.NewTestUoW(db)),
		NewProjectService(projects, activities)
}

func TestExpenseService_Add_Validation(t *testing.T) {
	expSvc, _, projSvc := newExpenseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Strict")
	require.NoError(t, projSvc.Create(ctx, p))

	err := expSvc.Add(ctx, &domain.Expense{ProjectID: p.ID, Category: "souvenirs", Amount: 50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown budget category")

	err = expSvc.Add(ctx, &domain.Expense{ProjectID: p.ID, Category: domain.CategoryFood, Amount: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	err = expSvc.Add(ctx, &domain.Expense{ProjectID: "missing", Category: domain.CategoryFood, Amount: 10})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExpenseService_Status_RequiresPlan(t *testing.T) {
	expSvc, _, projSvc := newExpenseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Unplanned")
	require.NoError(t, projSvc.Create(ctx, p))

	_, err := expSvc.Status(ctx, p.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget plan")
}

func TestExpenseService_Status_TracksSpend(t *testing.T) {
	expSvc, planSvc, projSvc := newExpenseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Tracked",
		testutil.WithParticipants(domain.ParticipantGroup{"SE": 15, "DE": 10, "PL": 5}),
		testutil.WithDuration(7),
	)
	require.NoError(t, projSvc.Create(ctx, p))

	_, err := planSvc.Plan(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, expSvc.Add(ctx, &domain.Expense{ProjectID: p.ID, Category: domain.CategoryTravel, Amount: 2000}))
	require.NoError(t, expSvc.Add(ctx, &domain.Expense{ProjectID: p.ID, Category: domain.CategoryTravel, Amount: 1500}))
	require.NoError(t, expSvc.Add(ctx, &domain.Expense{ProjectID: p.ID, Category: domain.CategoryPermits, Amount: 4000}))

	status, err := expSvc.Status(ctx, p.ID)
	require.NoError(t, err)

	require.Len(t, status.Rows, len(domain.BudgetCategories))
	byCategory := map[domain.BudgetCategory]domain.CategorySpend{}
	for _, row := range status.Rows {
		byCategory[row.Category] = row
	}

	travel := byCategory[domain.CategoryTravel]
	assert.Equal(t, 3500, travel.Spent)
	assert.Equal(t, travel.Allocated-3500, travel.Remaining)
	assert.False(t, travel.OverBudget)

	// Permits is a 1% category; 4000 blows straight through it.
	permits := byCategory[domain.CategoryPermits]
	assert.True(t, permits.OverBudget)
	assert.Negative(t, permits.Remaining)

	assert.Equal(t, status.Allocation.Total, status.TotalAllocated)
	assert.Equal(t, 7500, status.TotalSpent)
	assert.Equal(t, status.TotalAllocated-7500, status.TotalRemaining)
	assert.Equal(t, []domain.BudgetCategory{domain.CategoryPermits}, status.OverBudgetCategories())
}

func TestExpenseService_Delete(t *testing.T) {
	expSvc, _, projSvc := newExpenseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Refunded")
	require.NoError(t, projSvc.Create(ctx, p))

	e := &domain.Expense{ProjectID: p.ID, Category: domain.CategoryFood, Amount: 75}
	require.NoError(t, expSvc.Add(ctx, e))
	require.NoError(t, expSvc.Delete(ctx, e.ID))

	list, err := expSvc.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
