package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/plusplan/plusplan/internal/domain"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithDestination(destination, city, country string) ProjectOption {
	return func(p *domain.Project) {
		p.Destination = destination
		p.DestinationCity = city
		p.DestinationCountry = country
	}
}

func WithParticipants(group domain.ParticipantGroup) ProjectOption {
	return func(p *domain.Project) {
		p.Participants = group
	}
}

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithDuration(days int) ProjectOption {
	return func(p *domain.Project) {
		p.DurationDays = days
	}
}

func WithTotalBudget(amount int) ProjectOption {
	return func(p *domain.Project) {
		p.TotalBudget = amount
	}
}

func WithGreenTravel() ProjectOption {
	return func(p *domain.Project) {
		p.GreenTravel = true
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithFlags(publicEvent, foodPrepared bool) ProjectOption {
	return func(p *domain.Project) {
		p.PublicEvent = publicEvent
		p.FoodPrepared = foodPrepared
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestProject builds an exchange hosted in Barcelona with a small
// two-country group, ready for repository or service tests.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:                 uuid.New().String(),
		ShortID:            defaultShortID(name),
		Name:               name,
		Destination:        "Barcelona, Spain",
		DestinationCity:    "Barcelona",
		DestinationCountry: "ES",
		DurationDays:       7,
		Status:             domain.ProjectActive,
		CreatedAt:          now,
		UpdatedAt:          now,
		Participants:       domain.ParticipantGroup{"SE": 10, "DE": 8},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithActivityType(t domain.ActivityType) ActivityOption {
	return func(a *domain.Activity) {
		a.Type = t
	}
}

func WithOutdoor() ActivityOption {
	return func(a *domain.Activity) {
		a.Outdoor = true
	}
}

func NewTestActivity(projectID, name string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Type:      domain.ActivityWorkshop,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestExpense(projectID string, category domain.BudgetCategory, amount int) *domain.Expense {
	now := time.Now().UTC()
	return &domain.Expense{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Category:   category,
		Amount:     amount,
		IncurredOn: now,
		CreatedAt:  now,
	}
}
