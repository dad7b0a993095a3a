// Package requirements derives visa, insurance, permit, and accessibility
// obligations from a project's participant and destination data.
//
// Analyze is a total function: every input produces a result and nothing
// errors. Unknown destinations degrade to a documented fallback instead of
// failing, because downstream visa logic always needs a country.
package requirements

import (
	"sort"
	"time"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
)

const (
	VisaSchengen = "schengen"
	VisaNational = "national"

	InsuranceGroupTravel = "group_travel"
	InsuranceIndividual  = "individual"
)

// Visa applications need to be lodged well before the exchange. Fixed
// policy, not configurable.
const visaLeadTime = 12 * 7 * 24 * time.Hour

// VisaRequirement reports whether any participant group needs a visa for
// the destination, and by when applications should be filed.
type VisaRequirement struct {
	Required          bool
	Type              string
	AffectedCountries []string
	Deadline          time.Time
}

// InsuranceRequirement is always required; the type and coverage scale with
// group size.
type InsuranceRequirement struct {
	Required bool
	Type     string
	Coverage []string
}

// Permit is one required permit with its reason and issuing authority.
type Permit struct {
	Type             string
	Reason           string
	IssuingAuthority string
}

// PermitRequirement lists the permits the program triggers.
type PermitRequirement struct {
	Required bool
	Permits  []Permit
}

// AccessibilityBaseline is the fixed EU-compliance baseline, independent of
// all inputs.
type AccessibilityBaseline struct {
	WheelchairAccess bool
	DietaryTracking  bool
	LanguageSupport  []string
}

// Result bundles the four independent determinations. They are computed
// from disjoint input fields and carry no cross-invariants.
type Result struct {
	Visa          VisaRequirement
	Insurance     InsuranceRequirement
	Permits       PermitRequirement
	Accessibility AccessibilityBaseline
}

// Analyzer derives requirements from project metadata.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer returns an analyzer using the wall clock for visa deadlines.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerAt(time.Now)
}

// NewAnalyzerAt injects the clock, for deterministic deadline tests.
func NewAnalyzerAt(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze computes the full requirements bundle for a project.
func (a *Analyzer) Analyze(meta domain.ProjectMetadata) Result {
	return Result{
		Visa:      a.analyzeVisa(meta),
		Insurance: analyzeInsurance(meta),
		Permits:   analyzePermits(meta),
		Accessibility: AccessibilityBaseline{
			WheelchairAccess: true,
			DietaryTracking:  true,
			LanguageSupport:  []string{"EN"},
		},
	}
}

func (a *Analyzer) analyzeVisa(meta domain.ProjectMetadata) VisaRequirement {
	destination := destinationCountry(meta.Destination)

	nonEU := make([]string, 0, len(meta.ParticipantCountries))
	seen := make(map[string]bool)
	for _, country := range meta.ParticipantCountries {
		if geo.IsEUMember(country) || seen[country] {
			continue
		}
		seen[country] = true
		nonEU = append(nonEU, country)
	}
	sort.Strings(nonEU)

	var visaType string
	switch {
	case geo.IsSchengen(destination) && len(nonEU) > 0:
		visaType = VisaSchengen
	case geo.IsEUMember(destination) && len(nonEU) > 0:
		visaType = VisaNational
	default:
		return VisaRequirement{}
	}

	return VisaRequirement{
		Required:          true,
		Type:              visaType,
		AffectedCountries: nonEU,
		Deadline:          a.visaDeadline(meta.StartDate),
	}
}

func (a *Analyzer) visaDeadline(start *time.Time) time.Time {
	if start != nil {
		return start.Add(-visaLeadTime)
	}
	return a.now().Add(visaLeadTime)
}

func analyzeInsurance(meta domain.ProjectMetadata) InsuranceRequirement {
	// There is no insurance-free path.
	if meta.Participants >= 10 {
		return InsuranceRequirement{
			Required: true,
			Type:     InsuranceGroupTravel,
			Coverage: []string{"medical", "liability", "trip_cancellation", "emergency_evacuation"},
		}
	}
	return InsuranceRequirement{
		Required: true,
		Type:     InsuranceIndividual,
		Coverage: []string{"medical", "liability"},
	}
}

func analyzePermits(meta domain.ProjectMetadata) PermitRequirement {
	var permits []Permit

	if meta.PublicEvent || meta.CountActivityType(domain.ActivityPublicEvent) > 0 {
		permits = append(permits, Permit{
			Type:             "event",
			Reason:           "program includes a public event",
			IssuingAuthority: "municipality",
		})
	}
	if meta.FoodPrepared || meta.CountActivityType(domain.ActivityCookingWorkshop) > 0 {
		permits = append(permits, Permit{
			Type:             "food_handling",
			Reason:           "participants prepare or serve food",
			IssuingAuthority: "local health authority",
		})
	}
	for _, activity := range meta.Activities {
		if activity.Outdoor {
			permits = append(permits, Permit{
				Type:             "public_assembly",
				Reason:           "program includes outdoor activities",
				IssuingAuthority: "municipality",
			})
			break
		}
	}

	return PermitRequirement{Required: len(permits) > 0, Permits: permits}
}
