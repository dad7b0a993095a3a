package domain

import (
	"sort"
	"time"
)

// ParticipantGroup maps an ISO 3166-1 alpha-2 country code to a positive
// participant count.
type ParticipantGroup map[string]int

// Total returns the participant count across all countries.
func (g ParticipantGroup) Total() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}

// Countries returns the country codes in sorted order.
func (g ParticipantGroup) Countries() []string {
	countries := make([]string, 0, len(g))
	for c := range g {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// Activity is one named program activity.
type Activity struct {
	ID        string
	ProjectID string
	Name      string
	Type      ActivityType
	Outdoor   bool
	CreatedAt time.Time
}

// ProjectMetadata is the rich project description consumed by both the
// budget allocator and the requirements analyzer. Neither component owns
// it; the service layer assembles it from a stored project.
type ProjectMetadata struct {
	TotalBudget          int
	Participants         int
	DurationDays         int
	Destination          string
	ParticipantCountries []string
	Activities           []Activity
	PublicEvent          bool
	FoodPrepared         bool
	StartDate            *time.Time
}

// CountActivityType returns how many activities carry the given type tag.
func (m ProjectMetadata) CountActivityType(t ActivityType) int {
	n := 0
	for _, a := range m.Activities {
		if a.Type == t {
			n++
		}
	}
	return n
}
