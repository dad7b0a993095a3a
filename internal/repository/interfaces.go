package repository

import (
	"context"

	"github.com/plusplan/plusplan/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetParticipants(ctx context.Context, projectID string, group domain.ParticipantGroup) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type AllocationRepo interface {
	Save(ctx context.Context, a *domain.BudgetAllocation) error
	Get(ctx context.Context, projectID string) (*domain.BudgetAllocation, error)
}

type ExpenseRepo interface {
	Create(ctx context.Context, e *domain.Expense) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Expense, error)
	TotalsByCategory(ctx context.Context, projectID string) (map[domain.BudgetCategory]int, error)
	Delete(ctx context.Context, id string) error
}
