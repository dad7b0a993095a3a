package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// Project is one Erasmus+ Youth Exchange grant project.
// Amounts are whole euro. TotalBudget zero means "use the computed grant
// figure"; a positive value is a coordinator-entered override.
type Project struct {
	ID                 string
	ShortID            string
	Name               string
	Destination        string // free text as entered, e.g. "Barcelona, Spain"
	DestinationCity    string
	DestinationCountry string // ISO 3166-1 alpha-2, uppercase
	StartDate          time.Time
	DurationDays       int
	TotalBudget        int
	GreenTravel        bool
	PublicEvent        bool
	FoodPrepared       bool
	Status             ProjectStatus
	ArchivedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Participants ParticipantGroup
	Activities   []Activity
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. BCN01, YOUTH24).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. BCN01)", p.ShortID)
	}
	return nil
}

// Validate checks the fields the budget engine depends on.
func (p *Project) Validate() error {
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day, got %d", p.DurationDays)
	}
	if p.Participants.Total() < 1 {
		return fmt.Errorf("project needs at least one participant")
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Metadata assembles the rich project description consumed by the budget
// allocator and the requirements analyzer. totalBudget lets the caller pass
// the computed grant figure when no override is stored.
func (p *Project) Metadata(totalBudget int) ProjectMetadata {
	start := p.StartDate
	meta := ProjectMetadata{
		TotalBudget:          totalBudget,
		Participants:         p.Participants.Total(),
		DurationDays:         p.DurationDays,
		Destination:          p.Destination,
		ParticipantCountries: p.Participants.Countries(),
		Activities:           p.Activities,
		PublicEvent:          p.PublicEvent,
		FoodPrepared:         p.FoodPrepared,
	}
	if !start.IsZero() {
		meta.StartDate = &start
	}
	return meta
}
