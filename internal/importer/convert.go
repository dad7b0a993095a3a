package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
)

// Convert transforms a validated ImportSchema into a domain project ready
// for persistence. Call ValidateImportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema) (*domain.Project, error) {
	now := time.Now().UTC()

	var startDate time.Time
	if schema.Project.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *schema.Project.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		startDate = parsed
	}

	city, country := geo.SplitDestination(schema.Project.Destination)

	project := &domain.Project{
		ID:                 uuid.New().String(),
		ShortID:            strings.ToUpper(schema.Project.ShortID),
		Name:               schema.Project.Name,
		Destination:        schema.Project.Destination,
		DestinationCity:    city,
		DestinationCountry: country,
		StartDate:          startDate,
		DurationDays:       schema.Project.DurationDays,
		GreenTravel:        schema.Project.GreenTravel,
		PublicEvent:        schema.Project.PublicEvent,
		FoodPrepared:       schema.Project.FoodPrepared,
		Status:             domain.ProjectActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if schema.Project.TotalBudget != nil {
		project.TotalBudget = *schema.Project.TotalBudget
	}

	group := domain.ParticipantGroup{}
	for _, p := range schema.Participants {
		group[strings.ToUpper(p.Country)] = p.Count
	}
	project.Participants = group

	for _, a := range schema.Activities {
		activityType := a.Type
		if activityType == "" {
			activityType = string(domain.ActivityWorkshop)
		}
		project.Activities = append(project.Activities, domain.Activity{
			ID:        uuid.New().String(),
			ProjectID: project.ID,
			Name:      a.Name,
			Type:      domain.ActivityType(activityType),
			Outdoor:   a.Outdoor,
			CreatedAt: now,
		})
	}

	return project, nil
}
