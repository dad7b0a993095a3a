package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plusplan/plusplan/internal/allocator"
	"github.com/plusplan/plusplan/internal/contract"
	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/geo"
	"github.com/plusplan/plusplan/internal/grant"
	"github.com/plusplan/plusplan/internal/repository"
	"github.com/plusplan/plusplan/internal/requirements"
)

type planService struct {
	projects    repository.ProjectRepo
	allocations repository.AllocationRepo
	uow         db.UnitOfWork
	calculator  *grant.Calculator
	allocator   *allocator.Allocator
	analyzer    *requirements.Analyzer
}

func NewPlanService(projects repository.ProjectRepo, allocations repository.AllocationRepo, uow db.UnitOfWork) PlanService {
	return &planService{
		projects:    projects,
		allocations: allocations,
		uow:         uow,
		calculator:  grant.NewCalculator(),
		allocator:   allocator.New(),
		analyzer:    requirements.NewAnalyzer(),
	}
}

// Plan runs the full pipeline and persists the resulting allocation so
// later expense tracking can report against it.
func (s *planService) Plan(ctx context.Context, projectID string) (*contract.BudgetPlanResponse, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out, err := s.estimate(p)
	if err != nil {
		return nil, err
	}

	budget := p.TotalBudget
	source := contract.BudgetSourceOverride
	if budget == 0 {
		budget = out.Total
		source = contract.BudgetSourceGrant
	}

	meta := p.Metadata(budget)
	alloc := s.allocator.Allocate(meta)
	report := s.analyzer.Analyze(meta)

	stored := &domain.BudgetAllocation{
		ProjectID:      p.ID,
		Total:          alloc.Total,
		Amounts:        alloc.Amounts,
		Justifications: alloc.Justifications,
		ComputedAt:     time.Now().UTC(),
	}
	// Save replaces the header and all category lines; run it in one
	// transaction so a mid-sequence failure cannot leave a partial
	// allocation behind.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteAllocationRepo(tx).Save(ctx, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("saving allocation: %w", err)
	}

	return &contract.BudgetPlanResponse{
		Project:      p,
		Grant:        out,
		Allocation:   &alloc,
		Requirements: &report,
		BudgetSource: source,
	}, nil
}

func (s *planService) EstimateGrant(ctx context.Context, projectID string) (*grant.Output, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.estimate(p)
}

func (s *planService) Requirements(ctx context.Context, projectID string) (*requirements.Result, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	report := s.analyzer.Analyze(p.Metadata(p.TotalBudget))
	return &report, nil
}

func (s *planService) SavedAllocation(ctx context.Context, projectID string) (*domain.BudgetAllocation, error) {
	return s.allocations.Get(ctx, projectID)
}

// estimate resolves coordinates for the destination and every sending
// country before handing off to the unit-cost calculator.
func (s *planService) estimate(p *domain.Project) (*grant.Output, error) {
	destination, err := geo.CityPoint(p.DestinationCity, p.DestinationCountry)
	if err != nil {
		return nil, fmt.Errorf("destination %q: %w", p.Destination, err)
	}
	origins, err := geo.Origins(p.Participants.Countries())
	if err != nil {
		return nil, err
	}

	in := grant.Input{
		Participants:       p.Participants,
		DestinationCity:    p.DestinationCity,
		DestinationCountry: p.DestinationCountry,
		DurationDays:       p.DurationDays,
		GreenTravel:        p.GreenTravel,
	}
	return s.calculator.Calculate(in, destination, origins)
}
