// Package importer loads whole projects from JSON files: parse, validate,
// convert to domain objects.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import.
type ImportSchema struct {
	Project      ProjectImport       `json:"project"`
	Participants []ParticipantImport `json:"participants"`
	Activities   []ActivityImport    `json:"activities,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	ShortID      string  `json:"short_id"`
	Name         string  `json:"name"`
	Destination  string  `json:"destination"`
	StartDate    *string `json:"start_date,omitempty"`
	DurationDays int     `json:"duration_days"`
	TotalBudget  *int    `json:"total_budget,omitempty"`
	GreenTravel  bool    `json:"green_travel,omitempty"`
	PublicEvent  bool    `json:"public_event,omitempty"`
	FoodPrepared bool    `json:"food_prepared,omitempty"`
}

// ParticipantImport defines one sending country's delegation.
type ParticipantImport struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// ActivityImport defines a program activity in the import file.
type ActivityImport struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Outdoor bool   `json:"outdoor,omitempty"`
}

// LoadImportSchema reads and parses a project import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
