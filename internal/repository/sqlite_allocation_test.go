package repository

import (
	"context"
	"testing"
	"time"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAllocationRepo(db)

	proj := testutil.NewTestProject("Budgeted")
	require.NoError(t, projRepo.Create(ctx, proj))

	alloc := &domain.BudgetAllocation{
		ProjectID: proj.ID,
		Total:     10000,
		Amounts: map[domain.BudgetCategory]int{
			domain.CategoryTravel:        3000,
			domain.CategoryAccommodation: 2500,
			domain.CategoryFood:          1500,
			domain.CategoryActivities:    1500,
			domain.CategoryStaffing:      800,
			domain.CategoryInsurance:     300,
			domain.CategoryPermits:       100,
			domain.CategoryApplication:   100,
			domain.CategoryContingency:   200,
		},
		Justifications: []string{
			"long-distance travel: travel share raised to 35%",
		},
		ComputedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, alloc))

	fetched, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 10000, fetched.Total)
	assert.Equal(t, alloc.Amounts, fetched.Amounts)
	assert.Equal(t, alloc.Justifications, fetched.Justifications)
	assert.Equal(t, alloc.ComputedAt, fetched.ComputedAt)
	assert.Equal(t, 10000, fetched.Sum())
}

func TestAllocationRepo_SaveReplacesPreviousRun(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAllocationRepo(db)

	proj := testutil.NewTestProject("Recomputed")
	require.NoError(t, projRepo.Create(ctx, proj))

	first := &domain.BudgetAllocation{
		ProjectID:      proj.ID,
		Total:          8000,
		Amounts:        map[domain.BudgetCategory]int{domain.CategoryTravel: 8000},
		Justifications: []string{"short program: food reduced to 10%"},
		ComputedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &domain.BudgetAllocation{
		ProjectID:  proj.ID,
		Total:      12000,
		Amounts:    map[domain.BudgetCategory]int{domain.CategoryTravel: 12000},
		ComputedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, second))

	fetched, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 12000, fetched.Total)
	assert.Equal(t, 12000, fetched.Amounts[domain.CategoryTravel])
	assert.Empty(t, fetched.Justifications)
	assert.Equal(t, second.ComputedAt, fetched.ComputedAt)
}

func TestAllocationRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAllocationRepo(db)

	_, err := repo.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}
