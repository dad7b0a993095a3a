package allocator

import (
	"github.com/plusplan/plusplan/internal/domain"
)

// PhaseAllocation is one named phase-level slice of a category amount.
type PhaseAllocation struct {
	Name   string
	Amount int
}

// phaseAllocations maps category amounts onto phase-level sub-allocations.
// Travel splits 40/40/20 into outbound/return/local transport; activities
// divide evenly across the named activities; every other category maps 1:1
// onto a phase of the same name. Sub-allocations always sum exactly to the
// category amount.
func phaseAllocations(amounts map[domain.BudgetCategory]int, activities []domain.Activity) map[domain.BudgetCategory][]PhaseAllocation {
	phases := make(map[domain.BudgetCategory][]PhaseAllocation, len(amounts))

	for _, cat := range domain.BudgetCategories {
		amount := amounts[cat]
		switch cat {
		case domain.CategoryTravel:
			phases[cat] = splitTravel(amount)
		case domain.CategoryActivities:
			phases[cat] = splitActivities(amount, activities)
		default:
			phases[cat] = []PhaseAllocation{{Name: string(cat), Amount: amount}}
		}
	}
	return phases
}

func splitTravel(amount int) []PhaseAllocation {
	outbound := roundHalfUp(0.4 * float64(amount))
	ret := roundHalfUp(0.4 * float64(amount))
	// Local transport takes the remainder so the split sums exactly.
	local := amount - outbound - ret
	return []PhaseAllocation{
		{Name: "outbound travel", Amount: outbound},
		{Name: "return travel", Amount: ret},
		{Name: "local transport", Amount: local},
	}
}

func splitActivities(amount int, activities []domain.Activity) []PhaseAllocation {
	if len(activities) == 0 {
		return []PhaseAllocation{{Name: "activities", Amount: amount}}
	}
	per := amount / len(activities)
	slices := make([]PhaseAllocation, len(activities))
	for i, act := range activities {
		slices[i] = PhaseAllocation{Name: act.Name, Amount: per}
	}
	// Division remainder lands on the first activity.
	slices[0].Amount += amount - per*len(activities)
	return slices
}
