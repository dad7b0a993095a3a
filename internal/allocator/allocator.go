// Package allocator distributes a total project budget across the nine
// fixed spending categories, applying contextual adjustments derived from
// the project description.
//
// Allocate is a total function: it always produces an allocation satisfying
// the exact sum invariant, degrading to the base percentages when the
// metadata gives no reason to adjust. This backs a planning tool, so
// producing a reasonable estimate always beats failing.
package allocator

import (
	"fmt"
	"math"
	"strings"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
)

// Allocation is the result of one budget split. Amounts always sum exactly
// to Total; Justifications records which contextual adjustments fired.
type Allocation struct {
	Total          int
	Amounts        map[domain.BudgetCategory]int
	Justifications []string
	Phases         map[domain.BudgetCategory][]PhaseAllocation
}

// Summary joins the fired adjustment justifications into one line.
func (a Allocation) Summary() string {
	if len(a.Justifications) == 0 {
		return "standard allocation, no contextual adjustments"
	}
	return strings.Join(a.Justifications, "; ")
}

// Allocator holds the base percentages and the reference data the
// contextual rules consult. The zero value is not usable; construct with
// New.
type Allocator struct {
	basePct         map[domain.BudgetCategory]float64
	inEurope        func(country string) bool
	expensiveCities []string
}

// Base percentages sum to exactly 100.
func defaultBasePct() map[domain.BudgetCategory]float64 {
	return map[domain.BudgetCategory]float64{
		domain.CategoryTravel:        30,
		domain.CategoryAccommodation: 25,
		domain.CategoryFood:          15,
		domain.CategoryActivities:    15,
		domain.CategoryStaffing:      8,
		domain.CategoryInsurance:     3,
		domain.CategoryPermits:       1,
		domain.CategoryApplication:   1,
		domain.CategoryContingency:   2,
	}
}

// Destinations whose accommodation market justifies a larger share.
var defaultExpensiveCities = []string{
	"amsterdam", "copenhagen", "dublin", "geneva", "helsinki", "london",
	"luxembourg", "munich", "oslo", "paris", "reykjavik", "stockholm",
	"vienna", "zurich",
}

// New returns an allocator with the default tables.
func New() *Allocator {
	return &Allocator{
		basePct:         defaultBasePct(),
		inEurope:        geo.IsWiderEurope,
		expensiveCities: defaultExpensiveCities,
	}
}

const pctEpsilon = 0.01

// Allocate splits meta.TotalBudget across the nine categories.
//
// The five contextual adjustments run in a fixed order and assign
// percentages directly, so a later rule overwrites an earlier one for the
// same category. After all rules, any drift from 100% is absorbed into the
// application share; integer rounding residue lands in contingency so the
// amounts sum exactly to the input total.
func (a *Allocator) Allocate(meta domain.ProjectMetadata) Allocation {
	pct := make(map[domain.BudgetCategory]float64, len(a.basePct))
	for cat, p := range a.basePct {
		pct[cat] = p
	}

	var justifications []string
	rules := []func(domain.ProjectMetadata, map[domain.BudgetCategory]float64) (string, bool){
		a.adjustLongDistance,
		a.adjustWorkshopHeavy,
		a.adjustExpensiveDestination,
		a.adjustLargeGroup,
		a.adjustShortProgram,
	}
	for _, rule := range rules {
		if msg, fired := rule(meta, pct); fired {
			justifications = append(justifications, msg)
		}
	}

	renormalize(pct)

	total := meta.TotalBudget
	if total < 0 {
		total = 0
	}

	amounts := make(map[domain.BudgetCategory]int, len(pct))
	allocated := 0
	for _, cat := range domain.BudgetCategories {
		amount := roundHalfUp(pct[cat] / 100 * float64(total))
		amounts[cat] = amount
		allocated += amount
	}
	// Rounding residue goes to contingency; the category sums must equal
	// the input total exactly.
	amounts[domain.CategoryContingency] += total - allocated

	return Allocation{
		Total:          total,
		Amounts:        amounts,
		Justifications: justifications,
		Phases:         phaseAllocations(amounts, meta.Activities),
	}
}

// adjustLongDistance fires when the destination or any participant country
// sits outside the Europe allow-list. An unresolvable destination counts as
// long-distance: this rule deliberately does not share the requirements
// analyzer's Spain fallback.
func (a *Allocator) adjustLongDistance(meta domain.ProjectMetadata, pct map[domain.BudgetCategory]float64) (string, bool) {
	longDistance := false
	if code, ok := geo.ResolveCountry(meta.Destination); !ok || !a.inEurope(code) {
		longDistance = true
	}
	for _, country := range meta.ParticipantCountries {
		if !a.inEurope(country) {
			longDistance = true
		}
	}
	if !longDistance {
		return "", false
	}
	pct[domain.CategoryTravel] = 35
	pct[domain.CategoryActivities] = 13
	return "long-distance travel: travel share raised to 35%", true
}

func (a *Allocator) adjustWorkshopHeavy(meta domain.ProjectMetadata, pct map[domain.BudgetCategory]float64) (string, bool) {
	workshops := meta.CountActivityType(domain.ActivityWorkshop)
	if workshops < 3 {
		return "", false
	}
	pct[domain.CategoryActivities] = 20
	pct[domain.CategoryAccommodation] = 23
	return fmt.Sprintf("workshop-heavy program (%d workshops): activities share raised to 20%%", workshops), true
}

func (a *Allocator) adjustExpensiveDestination(meta domain.ProjectMetadata, pct map[domain.BudgetCategory]float64) (string, bool) {
	dest := strings.ToLower(meta.Destination)
	for _, city := range a.expensiveCities {
		if strings.Contains(dest, city) {
			pct[domain.CategoryAccommodation] = 30
			pct[domain.CategoryFood] = 13
			return fmt.Sprintf("high-cost destination (%s): accommodation share raised to 30%%", city), true
		}
	}
	return "", false
}

func (a *Allocator) adjustLargeGroup(meta domain.ProjectMetadata, pct map[domain.BudgetCategory]float64) (string, bool) {
	if meta.Participants < 50 {
		return "", false
	}
	pct[domain.CategoryContingency] = 5
	pct[domain.CategoryStaffing] = 6
	if pct[domain.CategoryActivities]-1 >= 10 {
		pct[domain.CategoryActivities] -= 1
	}
	return fmt.Sprintf("large group (%d participants): contingency raised to 5%%", meta.Participants), true
}

func (a *Allocator) adjustShortProgram(meta domain.ProjectMetadata, pct map[domain.BudgetCategory]float64) (string, bool) {
	if meta.DurationDays > 3 || meta.DurationDays <= 0 {
		return "", false
	}
	pct[domain.CategoryFood] = 10
	pct[domain.CategoryTravel] += 3
	return fmt.Sprintf("short program (%d days): food share lowered to 10%%", meta.DurationDays), true
}

// renormalize brings the percentage sum back to 100. Drift is absorbed
// into the application share, the least operationally sensitive line item.
// When several raising adjustments combine, application can be pushed below
// zero; the exact-sum contract is the binding invariant, and the
// justification list tells the coordinator which raises caused it.
func renormalize(pct map[domain.BudgetCategory]float64) {
	sum := 0.0
	for _, p := range pct {
		sum += p
	}
	if diff := 100 - sum; math.Abs(diff) > pctEpsilon {
		pct[domain.CategoryApplication] += diff
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
