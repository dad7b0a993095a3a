package formatter

import (
	"testing"
	"time"

	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProjectList_UsesShortIDWhenPresent(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:           "12345678-aaaa-bbbb-cccc-1234567890ab",
			ShortID:      "BCN01",
			Name:         "Barcelona Exchange",
			Destination:  "Barcelona, Spain",
			DurationDays: 7,
			Status:       domain.ProjectActive,
			CreatedAt:    now,
			UpdatedAt:    now,
			Participants: domain.ParticipantGroup{"SE": 15},
		},
	}

	out := FormatProjectList(projects)
	assert.Contains(t, out, "BCN01")
	assert.NotContains(t, out, "12345678")
	assert.Contains(t, out, "Barcelona, Spain")
}

func TestFormatProjectList_FallsBackToUUIDPrefix(t *testing.T) {
	projects := []*domain.Project{
		{ID: "abcdef12-3456-7890-abcd-ef1234567890", Name: "Nameless", Status: domain.ProjectDraft},
	}
	out := FormatProjectList(projects)
	assert.Contains(t, out, "abcdef12")
}

func TestFormatProjectInspect(t *testing.T) {
	p := &domain.Project{
		ID:           "id-1",
		ShortID:      "BCN01",
		Name:         "Barcelona Exchange",
		Destination:  "Barcelona, Spain",
		StartDate:    time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		DurationDays: 7,
		GreenTravel:  true,
		Status:       domain.ProjectActive,
		Participants: domain.ParticipantGroup{"SE": 15, "DE": 10},
		Activities: []domain.Activity{
			{Name: "Beach cleanup", Type: domain.ActivityExcursion, Outdoor: true},
		},
	}

	out := FormatProjectInspect(p)
	assert.Contains(t, out, "BCN01")
	assert.Contains(t, out, "Jul 10, 2026")
	assert.Contains(t, out, "green travel")
	assert.Contains(t, out, "PARTICIPANTS (25)")
	assert.Contains(t, out, "Beach cleanup")
	assert.Contains(t, out, "outdoor")
}

func TestFormatBudgetStatus(t *testing.T) {
	resp := &contract.BudgetStatusResponse{
		Project: &domain.Project{ShortID: "BCN01"},
		Rows: []domain.CategorySpend{
			{Category: domain.CategoryTravel, Allocated: 3000, Spent: 3500, Remaining: -500, OverBudget: true},
			{Category: domain.CategoryFood, Allocated: 1500, Spent: 200, Remaining: 1300},
		},
		TotalAllocated: 4500,
		TotalSpent:     3700,
		TotalRemaining: 800,
	}

	out := FormatBudgetStatus(resp)
	assert.Contains(t, out, "BCN01")
	assert.Contains(t, out, "€3,500")
	assert.Contains(t, out, "-€500")
	assert.Contains(t, out, "€800")
}
