// File: internal/opportunity/service.go
package opportunity

import (
	"context"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/organization"

	"go.uber.org/zap"
)

// Service defines the interface for opportunity business logic.
type Service interface {
	ListActive(ctx context.Context) ([]Opportunity, error)
	GetByID(ctx context.Context, id uint) (*Opportunity, error)
	// GetByCallerOrganization returns the opportunities published by the
	// caller's organization. A caller without an organization gets an empty
	// list, not an error.
	GetByCallerOrganization(ctx context.Context, userID uint) ([]Opportunity, error)
	Create(ctx context.Context, userID uint, req CreateOpportunityRequest) (*Opportunity, error)
	// ExpireOverdue closes active opportunities whose end date has passed and
	// returns how many were closed.
	ExpireOverdue(ctx context.Context) (int, error)
}

// ServiceImplementation provides opportunity business logic.
type ServiceImplementation struct {
	repo       Repository
	orgService organization.Service
	logger     *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new opportunity service instance.
func NewService(repo Repository, orgService organization.Service, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, orgService: orgService, logger: logger}
}

func (s *ServiceImplementation) ListActive(ctx context.Context) ([]Opportunity, error) {
	return s.repo.FindActive(ctx)
}

func (s *ServiceImplementation) GetByID(ctx context.Context, id uint) (*Opportunity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ServiceImplementation) GetByCallerOrganization(ctx context.Context, userID uint) ([]Opportunity, error) {
	org, err := s.orgService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return []Opportunity{}, nil
	}
	return s.repo.FindByOrganizationID(ctx, org.ID)
}

// Create publishes a new opportunity under the caller's organization. Callers
// without an organization profile cannot publish; publication always starts
// in the active status regardless of input.
func (s *ServiceImplementation) Create(ctx context.Context, userID uint, req CreateOpportunityRequest) (*Opportunity, error) {
	org, err := s.orgService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, common.ErrUnprocessableEntity.WithDetails("An organization profile is required to publish opportunities.")
	}

	opp := &Opportunity{
		OrganizationID:   org.ID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		VolunteersNeeded: req.VolunteersNeeded,
		SkillsRequired:   common.EncodeStringList(req.SkillsRequired),
		Status:           StatusActive,
		Image:            req.Image,
	}

	if err := s.repo.Create(ctx, opp); err != nil {
		return nil, err
	}

	s.logger.Info("Created opportunity",
		zap.Uint("opportunityID", opp.ID),
		zap.Uint("organizationID", org.ID),
		zap.String("title", opp.Title))
	return opp, nil
}

func (s *ServiceImplementation) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.repo.FindExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range overdue {
		if err := s.repo.UpdateStatus(ctx, overdue[i].ID, StatusClosed); err != nil {
			s.logger.Error("Failed to close overdue opportunity",
				zap.Uint("opportunityID", overdue[i].ID), zap.Error(err))
			continue
		}
		closed++
	}
	return closed, nil
}
