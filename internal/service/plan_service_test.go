package service

import (
	"context"
	"errors"
	"testing"

	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/repository"
	"github.com/plusplan/plusplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanFixture(t *testing.T) (PlanService, ProjectService) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	activities := repository.NewSQLiteActivityRepo(db)
	allocations := repository.NewSQLiteAllocationRepo(db)
	uow := testutil.NewTestUoW(db)
	return NewPlanService(projects, allocations, uow), NewProjectService(projects, activities)
}

// Thirty participants from three EU countries meeting in Barcelona for a
// week: the worked scenario whose figures are fixed by the rate tables.
func barcelonaProject() *domain.Project {
	return testutil.NewTestProject("Bridges Youth Exchange",
		testutil.WithDestination("Barcelona, Spain", "Barcelona", "ES"),
		testutil.WithParticipants(domain.ParticipantGroup{"SE": 15, "DE": 10, "PL": 5}),
		testutil.WithDuration(7),
	)
}

func TestPlanService_Plan_GrantFigures(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := barcelonaProject()
	require.NoError(t, projects.Create(ctx, p))

	resp, err := plans.Plan(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, contract.BudgetSourceGrant, resp.BudgetSource)
	assert.Equal(t, 9525, resp.Grant.Breakdown.Travel)
	assert.Equal(t, 8820, resp.Grant.Breakdown.PerDiem)
	assert.Equal(t, 750, resp.Grant.Breakdown.Organizational)
	assert.Equal(t, 19095, resp.Grant.Total)

	assert.Equal(t, 19095, resp.Allocation.Total)
	sum := 0
	for _, amount := range resp.Allocation.Amounts {
		sum += amount
	}
	assert.Equal(t, 19095, sum)

	assert.False(t, resp.Requirements.Visa.Required)
	assert.Equal(t, "group_travel", resp.Requirements.Insurance.Type)
}

func TestPlanService_Plan_PersistsAllocation(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := barcelonaProject()
	require.NoError(t, projects.Create(ctx, p))

	resp, err := plans.Plan(ctx, p.ID)
	require.NoError(t, err)

	saved, err := plans.SavedAllocation(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Allocation.Total, saved.Total)
	assert.Equal(t, resp.Allocation.Amounts, saved.Amounts)
	assert.Equal(t, resp.Allocation.Justifications, saved.Justifications)
}

func TestPlanService_Plan_RollbackKeepsPreviousAllocation(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	activities := repository.NewSQLiteActivityRepo(db)
	allocations := repository.NewSQLiteAllocationRepo(db)
	projSvc := NewProjectService(projects, activities)
	plans := NewPlanService(projects, allocations, testutil.NewTestUoW(db))
	ctx := context.Background()

	p := barcelonaProject()
	require.NoError(t, projSvc.Create(ctx, p))
	first, err := plans.Plan(ctx, p.ID)
	require.NoError(t, err)

	// Re-plan with a write failure mid-way through the category lines
	// (exec 1 is the header upsert, 2 clears the lines, 3+ insert them).
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 6, Err: errors.New("disk full")}
	failing := NewPlanService(projects, allocations, uow)
	_, err = failing.Plan(ctx, p.ID)
	require.Error(t, err)

	saved, err := plans.SavedAllocation(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Allocation.Total, saved.Total)
	assert.Equal(t, first.Allocation.Amounts, saved.Amounts,
		"failed save must not leave partial allocation lines")
	assert.Len(t, saved.Amounts, len(domain.BudgetCategories))
}

func TestPlanService_Plan_BudgetOverride(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := barcelonaProject()
	p.TotalBudget = 10000
	require.NoError(t, projects.Create(ctx, p))

	resp, err := plans.Plan(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.BudgetSourceOverride, resp.BudgetSource)
	assert.Equal(t, 10000, resp.Allocation.Total)
	// The grant estimate is still reported alongside the override.
	assert.Equal(t, 19095, resp.Grant.Total)
}

func TestPlanService_EstimateGrant_UnknownOrigin(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Far Flung",
		testutil.WithParticipants(domain.ParticipantGroup{"SE": 5, "XX": 5}),
	)
	require.NoError(t, projects.Create(ctx, p))

	_, err := plans.EstimateGrant(ctx, p.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX")
}

func TestPlanService_Requirements_WithoutPlan(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Paperwork",
		testutil.WithParticipants(domain.ParticipantGroup{"SE": 8, "RS": 4}),
		testutil.WithFlags(true, false),
	)
	require.NoError(t, projects.Create(ctx, p))

	report, err := plans.Requirements(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, report.Visa.Required)
	assert.Equal(t, []string{"RS"}, report.Visa.AffectedCountries)
	assert.True(t, report.Permits.Required)
}

func TestPlanService_SavedAllocation_NotFound(t *testing.T) {
	plans, projects := newPlanFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Unplanned")
	require.NoError(t, projects.Create(ctx, p))

	_, err := plans.SavedAllocation(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
