package requirements

import (
	"testing"
	"time"

	"github.com/plusplan/plusplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func testAnalyzer() *Analyzer {
	return NewAnalyzerAt(fixedNow)
}

func TestAnalyze_VisaSchengenDestination(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(domain.ProjectMetadata{
		Destination:          "Barcelona, Spain",
		ParticipantCountries: []string{"SE", "RS", "UA", "DE"},
		Participants:         20,
	})

	assert.True(t, result.Visa.Required)
	assert.Equal(t, VisaSchengen, result.Visa.Type)
	assert.Equal(t, []string{"RS", "UA"}, result.Visa.AffectedCountries)
}

func TestAnalyze_VisaNationalForNonSchengenEU(t *testing.T) {
	a := testAnalyzer()

	// Ireland is EU but not Schengen.
	result := a.Analyze(domain.ProjectMetadata{
		Destination:          "Dublin, Ireland",
		ParticipantCountries: []string{"FR", "RS"},
	})

	assert.True(t, result.Visa.Required)
	assert.Equal(t, VisaNational, result.Visa.Type)
	assert.Equal(t, []string{"RS"}, result.Visa.AffectedCountries)
}

func TestAnalyze_NoVisaForAllEUGroup(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(domain.ProjectMetadata{
		Destination:          "Barcelona, Spain",
		ParticipantCountries: []string{"SE", "DE", "PL", "ES"},
	})

	assert.False(t, result.Visa.Required)
	assert.Empty(t, result.Visa.Type)
	assert.Empty(t, result.Visa.AffectedCountries)
}

func TestAnalyze_VisaDeadline(t *testing.T) {
	a := testAnalyzer()
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	// With a known start date: 12 weeks before the exchange.
	result := a.Analyze(domain.ProjectMetadata{
		Destination:          "Barcelona, Spain",
		ParticipantCountries: []string{"RS"},
		StartDate:            &start,
	})
	assert.Equal(t, start.AddDate(0, 0, -84), result.Visa.Deadline)

	// Without one: 12 weeks from now.
	result = a.Analyze(domain.ProjectMetadata{
		Destination:          "Barcelona, Spain",
		ParticipantCountries: []string{"RS"},
	})
	assert.Equal(t, fixedNow().AddDate(0, 0, 84), result.Visa.Deadline)
}

// An unresolvable destination falls back to Spain, which is Schengen.
func TestAnalyze_DestinationFallback(t *testing.T) {
	a := testAnalyzer()

	for _, destination := range []string{"", "Atlantis", "Somewhere nice"} {
		result := a.Analyze(domain.ProjectMetadata{
			Destination:          destination,
			ParticipantCountries: []string{"RS"},
		})
		assert.True(t, result.Visa.Required, destination)
		assert.Equal(t, VisaSchengen, result.Visa.Type, destination)
	}

	assert.Equal(t, "ES", destinationCountry("Atlantis"))
	assert.Equal(t, "PL", destinationCountry("Krakow, Poland"))
}

// A trailing ISO code outside the programme area is kept as-is, so a
// non-Schengen, non-EU destination must not inherit the Spain fallback's
// visa rules.
func TestAnalyze_NoVisaOutsideProgrammeArea(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(domain.ProjectMetadata{
		Destination:          "Tokyo, JP",
		ParticipantCountries: []string{"RS", "SE"},
	})

	assert.False(t, result.Visa.Required)
	assert.Empty(t, result.Visa.Type)
	assert.Equal(t, "JP", destinationCountry("Tokyo, JP"))
}

func TestAnalyze_InsuranceScalesWithGroupSize(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(domain.ProjectMetadata{Participants: 9})
	assert.True(t, result.Insurance.Required)
	assert.Equal(t, InsuranceIndividual, result.Insurance.Type)
	assert.Equal(t, []string{"medical", "liability"}, result.Insurance.Coverage)

	result = a.Analyze(domain.ProjectMetadata{Participants: 10})
	assert.True(t, result.Insurance.Required)
	assert.Equal(t, InsuranceGroupTravel, result.Insurance.Type)
	assert.Len(t, result.Insurance.Coverage, 4)
}

func TestAnalyze_Permits(t *testing.T) {
	a := testAnalyzer()

	// Nothing triggers: no permits required.
	result := a.Analyze(domain.ProjectMetadata{
		Activities: []domain.Activity{{Name: "Talk", Type: domain.ActivityDiscussion}},
	})
	assert.False(t, result.Permits.Required)
	assert.Empty(t, result.Permits.Permits)

	// All three conditions trigger once each.
	result = a.Analyze(domain.ProjectMetadata{
		PublicEvent:  true,
		FoodPrepared: true,
		Activities: []domain.Activity{
			{Name: "City rally", Type: domain.ActivityExcursion, Outdoor: true},
			{Name: "Park games", Type: domain.ActivitySports, Outdoor: true},
		},
	})
	require.True(t, result.Permits.Required)
	require.Len(t, result.Permits.Permits, 3, "one permit per condition, not per activity")
	assert.Equal(t, "event", result.Permits.Permits[0].Type)
	assert.Equal(t, "food_handling", result.Permits.Permits[1].Type)
	assert.Equal(t, "public_assembly", result.Permits.Permits[2].Type)

	// Activity tags trigger the same permits as the explicit flags.
	result = a.Analyze(domain.ProjectMetadata{
		Activities: []domain.Activity{
			{Name: "Open stage", Type: domain.ActivityPublicEvent},
			{Name: "Cooking night", Type: domain.ActivityCookingWorkshop},
		},
	})
	require.Len(t, result.Permits.Permits, 2)
	assert.Equal(t, "event", result.Permits.Permits[0].Type)
	assert.Equal(t, "food_handling", result.Permits.Permits[1].Type)
}

func TestAnalyze_AccessibilityBaselineIsFixed(t *testing.T) {
	a := testAnalyzer()

	for _, meta := range []domain.ProjectMetadata{
		{},
		{Participants: 100, PublicEvent: true},
	} {
		result := a.Analyze(meta)
		assert.True(t, result.Accessibility.WheelchairAccess)
		assert.True(t, result.Accessibility.DietaryTracking)
		assert.Equal(t, []string{"EN"}, result.Accessibility.LanguageSupport)
	}
}

// Analyze is total: the zero-value metadata still yields a full result.
func TestAnalyze_ZeroValueMetadata(t *testing.T) {
	result := testAnalyzer().Analyze(domain.ProjectMetadata{})

	assert.False(t, result.Visa.Required)
	assert.True(t, result.Insurance.Required)
	assert.False(t, result.Permits.Required)
	assert.True(t, result.Accessibility.WheelchairAccess)
}
