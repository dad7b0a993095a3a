package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *ImportSchema {
	start := "2026-07-10"
	return &ImportSchema{
		Project: ProjectImport{
			ShortID:      "BCN01",
			Name:         "Barcelona Exchange",
			Destination:  "Barcelona, Spain",
			StartDate:    &start,
			DurationDays: 7,
		},
		Participants: []ParticipantImport{
			{Country: "SE", Count: 15},
			{Country: "DE", Count: 10},
		},
		Activities: []ActivityImport{
			{Name: "Opening workshop", Type: "workshop"},
			{Name: "City tour", Type: "excursion", Outdoor: true},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_MissingProjectFields(t *testing.T) {
	schema := validSchema()
	schema.Project.ShortID = ""
	schema.Project.Name = ""
	schema.Project.Destination = ""
	schema.Project.DurationDays = 0

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 4)
}

func TestValidateImportSchema_BadStartDate(t *testing.T) {
	schema := validSchema()
	bad := "July 10th"
	schema.Project.StartDate = &bad

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "start_date")
}

func TestValidateImportSchema_Participants(t *testing.T) {
	tests := []struct {
		name         string
		participants []ParticipantImport
		wantErr      string
	}{
		{"empty", nil, "at least one participant group"},
		{"bad code", []ParticipantImport{{Country: "Sweden", Count: 5}}, "two-letter ISO"},
		{"zero count", []ParticipantImport{{Country: "SE", Count: 0}}, "at least 1"},
		{"duplicate", []ParticipantImport{{Country: "SE", Count: 5}, {Country: "SE", Count: 3}}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validSchema()
			schema.Participants = tt.participants
			errs := ValidateImportSchema(schema)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantErr)
		})
	}
}

func TestValidateImportSchema_BadActivityType(t *testing.T) {
	schema := validSchema()
	schema.Activities = append(schema.Activities, ActivityImport{Name: "Rave", Type: "party"})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid value")
}

func TestValidateImportSchema_NegativeBudget(t *testing.T) {
	schema := validSchema()
	budget := -100
	schema.Project.TotalBudget = &budget

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "total_budget")
}
