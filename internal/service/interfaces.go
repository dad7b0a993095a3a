package service

import (
	"context"

	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/grant"
	"github.com/plusplan/plusplan/internal/importer"
	"github.com/plusplan/plusplan/internal/requirements"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetParticipants(ctx context.Context, projectID string, group domain.ParticipantGroup) error
	AddActivity(ctx context.Context, a *domain.Activity) error
	RemoveActivity(ctx context.Context, activityID string) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

// PlanService runs the budget pipeline: grant estimation, category
// allocation, and the requirements report.
type PlanService interface {
	Plan(ctx context.Context, projectID string) (*contract.BudgetPlanResponse, error)
	EstimateGrant(ctx context.Context, projectID string) (*grant.Output, error)
	Requirements(ctx context.Context, projectID string) (*requirements.Result, error)
	SavedAllocation(ctx context.Context, projectID string) (*domain.BudgetAllocation, error)
}

type ExpenseService interface {
	Add(ctx context.Context, e *domain.Expense) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Expense, error)
	Status(ctx context.Context, projectID string) (*contract.BudgetStatusResponse, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project       *domain.Project
	CountryCount  int
	ActivityCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
