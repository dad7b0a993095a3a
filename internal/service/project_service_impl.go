package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
	"github.com/plusplan/plusplan/internal/repository"
)

type projectService struct {
	projects   repository.ProjectRepo
	activities repository.ActivityRepo
}

func NewProjectService(projects repository.ProjectRepo, activities repository.ActivityRepo) ProjectService {
	return &projectService{projects: projects, activities: activities}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.DestinationCity == "" && p.DestinationCountry == "" {
		p.DestinationCity, p.DestinationCountry = geo.SplitDestination(p.Destination)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetParticipants(ctx context.Context, projectID string, group domain.ParticipantGroup) error {
	if group.Total() < 1 {
		return fmt.Errorf("participant group must contain at least one person")
	}
	return s.projects.SetParticipants(ctx, projectID, group)
}

func (s *projectService) AddActivity(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if a.Type == "" {
		a.Type = domain.ActivityWorkshop
	}
	if !domain.ValidActivityTypes[string(a.Type)] {
		return fmt.Errorf("unknown activity type %q", a.Type)
	}
	a.CreatedAt = time.Now().UTC()
	return s.activities.Create(ctx, a)
}

func (s *projectService) RemoveActivity(ctx context.Context, activityID string) error {
	return s.activities.Delete(ctx, activityID)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Unarchive(ctx context.Context, id string) error {
	return s.projects.Unarchive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
