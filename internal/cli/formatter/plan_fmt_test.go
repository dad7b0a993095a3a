package formatter

import (
	"testing"
	"time"

	"github.com/plusplan/plusplan/internal/allocator"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/grant"
	"github.com/plusplan/plusplan/internal/requirements"
	"github.com/stretchr/testify/assert"
)

func sampleGrant() *grant.Output {
	return &grant.Output{
		Travel: []grant.CountryTravel{
			{Country: "SE", Participants: 15, DistanceKm: 2279, Band: "2000-2999", PerPerson: 360, Total: 5400},
			{Country: "DE", Participants: 10, DistanceKm: 1499, Band: "500-1999", PerPerson: 275, Total: 2750},
		},
		PerDiemRate:  42,
		Participants: 25,
		Breakdown:    grant.Breakdown{Travel: 8150, PerDiem: 7350, Organizational: 750},
		Total:        16250,
	}
}

func TestFormatGrant(t *testing.T) {
	out := FormatGrant(sampleGrant())

	assert.Contains(t, out, "SE")
	assert.Contains(t, out, "2279")
	assert.Contains(t, out, "€5,400")
	assert.Contains(t, out, "€16,250")
	assert.Contains(t, out, "GRANT ESTIMATE")
}

func TestFormatGrant_GreenBonus(t *testing.T) {
	g := sampleGrant()
	g.Travel[1].GreenBonus = 40
	out := FormatGrant(g)
	assert.Contains(t, out, "green")
}

func TestFormatAllocation(t *testing.T) {
	alloc := &allocator.Allocation{
		Total: 10000,
		Amounts: map[domain.BudgetCategory]int{
			domain.CategoryTravel: 3000, domain.CategoryAccommodation: 2500,
			domain.CategoryFood: 1500, domain.CategoryActivities: 1500,
			domain.CategoryStaffing: 800, domain.CategoryInsurance: 300,
			domain.CategoryPermits: 100, domain.CategoryApplication: 100,
			domain.CategoryContingency: 200,
		},
		Justifications: []string{"expensive destination: accommodation raised to 30%"},
		Phases: map[domain.BudgetCategory][]allocator.PhaseAllocation{
			domain.CategoryTravel: {
				{Name: "outbound", Amount: 1200},
				{Name: "return", Amount: 1200},
				{Name: "local transport", Amount: 600},
			},
		},
	}

	out := FormatAllocation(alloc)
	assert.Contains(t, out, "travel")
	assert.Contains(t, out, "outbound")
	assert.Contains(t, out, "€1,200")
	assert.Contains(t, out, "expensive destination")
	assert.Contains(t, out, "€10,000")
}

func TestFormatRequirements_VisaRequired(t *testing.T) {
	r := &requirements.Result{
		Visa: requirements.VisaRequirement{
			Required:          true,
			Type:              "schengen",
			AffectedCountries: []string{"RS", "UA"},
			Deadline:          time.Date(2026, 4, 17, 0, 0, 0, 0, time.UTC),
		},
		Insurance: requirements.InsuranceRequirement{
			Required: true,
			Type:     "group_travel",
			Coverage: []string{"medical", "liability"},
		},
		Accessibility: requirements.AccessibilityBaseline{
			WheelchairAccess: true,
			DietaryTracking:  true,
			LanguageSupport:  []string{"en"},
		},
	}

	out := FormatRequirements(r)
	assert.Contains(t, out, "schengen")
	assert.Contains(t, out, "RS, UA")
	assert.Contains(t, out, "Apr 17, 2026")
	assert.Contains(t, out, "group_travel")
	assert.Contains(t, out, "no permits required")
}

func TestFormatRequirements_AllClear(t *testing.T) {
	r := &requirements.Result{
		Insurance: requirements.InsuranceRequirement{Required: true, Type: "individual", Coverage: []string{"medical"}},
		Accessibility: requirements.AccessibilityBaseline{
			WheelchairAccess: true, DietaryTracking: true, LanguageSupport: []string{"en"},
		},
	}
	out := FormatRequirements(r)
	assert.Contains(t, out, "no visas required")
}
