package importer

import (
	"fmt"
	"regexp"
	"time"

	"github.com/plusplan/plusplan/internal/domain"
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateParticipants(schema.Participants)...)
	errs = append(errs, validateActivities(schema.Activities)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.ShortID == "" {
		errs = append(errs, fmt.Errorf("project.short_id is required"))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.Destination == "" {
		errs = append(errs, fmt.Errorf("project.destination is required"))
	}
	if p.DurationDays < 1 {
		errs = append(errs, fmt.Errorf("project.duration_days must be at least 1, got %d", p.DurationDays))
	}
	if p.StartDate != nil {
		if _, err := time.Parse("2006-01-02", *p.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", *p.StartDate))
		}
	}
	if p.TotalBudget != nil && *p.TotalBudget < 0 {
		errs = append(errs, fmt.Errorf("project.total_budget must not be negative, got %d", *p.TotalBudget))
	}

	return errs
}

func validateParticipants(participants []ParticipantImport) []error {
	var errs []error

	if len(participants) == 0 {
		errs = append(errs, fmt.Errorf("at least one participant group is required"))
	}
	seen := make(map[string]bool)
	for i, p := range participants {
		if !countryCodePattern.MatchString(p.Country) {
			errs = append(errs, fmt.Errorf("participants[%d].country: %q is not a two-letter ISO country code", i, p.Country))
			continue
		}
		if seen[p.Country] {
			errs = append(errs, fmt.Errorf("participants[%d].country: duplicate entry for %s", i, p.Country))
		}
		seen[p.Country] = true
		if p.Count < 1 {
			errs = append(errs, fmt.Errorf("participants[%d].count must be at least 1, got %d", i, p.Count))
		}
	}

	return errs
}

func validateActivities(activities []ActivityImport) []error {
	var errs []error

	for i, a := range activities {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("activities[%d].name is required", i))
		}
		if a.Type != "" && !domain.ValidActivityTypes[a.Type] {
			errs = append(errs, fmt.Errorf("activities[%d].type: invalid value %q", i, a.Type))
		}
	}

	return errs
}
