package allocator

import (
	"testing"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhases_TravelSplit(t *testing.T) {
	result := New().Allocate(baseMeta())

	travel := result.Phases[domain.CategoryTravel]
	require.Len(t, travel, 3)
	assert.Equal(t, "outbound travel", travel[0].Name)
	assert.Equal(t, 1200, travel[0].Amount)
	assert.Equal(t, "return travel", travel[1].Name)
	assert.Equal(t, 1200, travel[1].Amount)
	assert.Equal(t, "local transport", travel[2].Name)
	assert.Equal(t, 600, travel[2].Amount)
}

func TestPhases_TravelSplitAbsorbsRemainder(t *testing.T) {
	phases := splitTravel(1001)
	assert.Equal(t, 400, phases[0].Amount)
	assert.Equal(t, 400, phases[1].Amount)
	assert.Equal(t, 201, phases[2].Amount)
	assert.Equal(t, 1001, phases[0].Amount+phases[1].Amount+phases[2].Amount)
}

func TestPhases_ActivitiesSplitEvenly(t *testing.T) {
	activities := []domain.Activity{
		{Name: "City rally"},
		{Name: "Cooking night"},
		{Name: "Open stage"},
	}
	phases := splitActivities(1000, activities)
	require.Len(t, phases, 3)
	assert.Equal(t, "City rally", phases[0].Name)
	assert.Equal(t, 334, phases[0].Amount, "division remainder lands on the first activity")
	assert.Equal(t, 333, phases[1].Amount)
	assert.Equal(t, 333, phases[2].Amount)
}

func TestPhases_NoActivitiesKeepsBudgetWhole(t *testing.T) {
	phases := splitActivities(1500, nil)
	require.Len(t, phases, 1)
	assert.Equal(t, "activities", phases[0].Name)
	assert.Equal(t, 1500, phases[0].Amount)
}

func TestPhases_OtherCategoriesMapOneToOne(t *testing.T) {
	result := New().Allocate(baseMeta())

	food := result.Phases[domain.CategoryFood]
	require.Len(t, food, 1)
	assert.Equal(t, "food", food[0].Name)
	assert.Equal(t, result.Amounts[domain.CategoryFood], food[0].Amount)
}

// Sub-allocations sum exactly to their category amount for every category.
func TestPhases_SumToCategoryAmounts(t *testing.T) {
	meta := baseMeta()
	meta.TotalBudget = 23457
	meta.Activities = []domain.Activity{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}
	result := New().Allocate(meta)

	for _, cat := range domain.BudgetCategories {
		sum := 0
		for _, phase := range result.Phases[cat] {
			sum += phase.Amount
		}
		assert.Equal(t, result.Amounts[cat], sum, string(cat))
	}
}
