package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject_ValidateShortID(t *testing.T) {
	cases := []struct {
		shortID string
		valid   bool
	}{
		{"BCN01", true},
		{"YOUTH24", true},
		{"EXCH0234", true},
		{"", false},
		{"bcn01", false},
		{"BCN", false},
		{"01BCN", false},
		{"TOOLONGID01", false},
	}

	for _, tc := range cases {
		p := &Project{ShortID: tc.shortID}
		err := p.ValidateShortID()
		if tc.valid {
			assert.NoError(t, err, tc.shortID)
		} else {
			assert.Error(t, err, tc.shortID)
		}
	}
}

func TestProject_DisplayID(t *testing.T) {
	p := &Project{ID: "0c5e7f1a-9d52-4b7e-a1f3-000000000000", ShortID: "BCN01"}
	assert.Equal(t, "BCN01", p.DisplayID())

	p.ShortID = ""
	assert.Equal(t, "0c5e7f1a", p.DisplayID())
}

func TestParticipantGroup(t *testing.T) {
	g := ParticipantGroup{"SE": 15, "DE": 10, "PL": 5}
	assert.Equal(t, 30, g.Total())
	assert.Equal(t, []string{"DE", "PL", "SE"}, g.Countries())

	assert.Equal(t, 0, ParticipantGroup{}.Total())
}

func TestProject_Metadata(t *testing.T) {
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	p := &Project{
		ShortID:      "BCN01",
		Name:         "Bridges over Borders",
		Destination:  "Barcelona, Spain",
		StartDate:    start,
		DurationDays: 7,
		Participants: ParticipantGroup{"SE": 15, "DE": 10},
		Activities:   []Activity{{Name: "Intro circle", Type: ActivityWorkshop}},
		PublicEvent:  true,
	}

	meta := p.Metadata(25000)
	assert.Equal(t, 25000, meta.TotalBudget)
	assert.Equal(t, 25, meta.Participants)
	assert.Equal(t, []string{"DE", "SE"}, meta.ParticipantCountries)
	assert.True(t, meta.PublicEvent)
	if assert.NotNil(t, meta.StartDate) {
		assert.Equal(t, start, *meta.StartDate)
	}
	assert.Equal(t, 1, meta.CountActivityType(ActivityWorkshop))
	assert.Equal(t, 0, meta.CountActivityType(ActivityCookingWorkshop))
}

func TestProject_Validate(t *testing.T) {
	p := &Project{
		ShortID:      "BCN01",
		Name:         "Exchange",
		DurationDays: 7,
		Participants: ParticipantGroup{"SE": 5},
	}
	assert.NoError(t, p.Validate())

	p.Participants = ParticipantGroup{}
	assert.Error(t, p.Validate())

	p.Participants = ParticipantGroup{"SE": 5}
	p.DurationDays = 0
	assert.Error(t, p.Validate())
}
