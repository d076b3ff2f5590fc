// File: internal/application/service.go
package application

import (
	"context"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/volunteer"

	"go.uber.org/zap"
)

// Service defines the interface for application business logic.
type Service interface {
	// GetByCallerVolunteer returns the applications submitted by the caller's
	// volunteer profile. A caller without a profile gets an empty list.
	GetByCallerVolunteer(ctx context.Context, userID uint) ([]Application, error)
	// GetReceivedByCallerOrganization returns every application across all of
	// the caller organization's opportunities. A caller without an
	// organization gets an empty list.
	GetReceivedByCallerOrganization(ctx context.Context, userID uint) ([]Application, error)
	Create(ctx context.Context, userID uint, req CreateApplicationRequest) (*Application, error)
}

// ServiceImplementation provides application business logic.
type ServiceImplementation struct {
	repo             Repository
	volunteerService volunteer.Service
	orgService       organization.Service
	opportunityRepo  opportunity.Repository
	logger           *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new application service instance.
func NewService(
	repo Repository,
	volunteerService volunteer.Service,
	orgService organization.Service,
	opportunityRepo opportunity.Repository,
	logger *zap.Logger,
) *ServiceImplementation {
	return &ServiceImplementation{
		repo:             repo,
		volunteerService: volunteerService,
		orgService:       orgService,
		opportunityRepo:  opportunityRepo,
		logger:           logger,
	}
}

func (s *ServiceImplementation) GetByCallerVolunteer(ctx context.Context, userID uint) ([]Application, error) {
	profile, err := s.volunteerService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []Application{}, nil
	}
	return s.repo.FindByVolunteerID(ctx, profile.ID)
}

// GetReceivedByCallerOrganization gathers the organization's opportunity ids
// and fetches every application against them with one IN query.
func (s *ServiceImplementation) GetReceivedByCallerOrganization(ctx context.Context, userID uint) ([]Application, error) {
	org, err := s.orgService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return []Application{}, nil
	}

	opportunityIDs, err := s.opportunityRepo.FindIDsByOrganizationID(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByOpportunityIDs(ctx, opportunityIDs)
}

// Create submits an application from the caller's volunteer profile to an
// existing opportunity. Applications always start pending.
func (s *ServiceImplementation) Create(ctx context.Context, userID uint, req CreateApplicationRequest) (*Application, error) {
	profile, err := s.volunteerService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, common.ErrUnprocessableEntity.WithDetails("A volunteer profile is required to apply for opportunities.")
	}

	if _, err := s.opportunityRepo.FindByID(ctx, req.OpportunityID); err != nil {
		return nil, err
	}

	app := &Application{
		VolunteerID:   profile.ID,
		OpportunityID: req.OpportunityID,
		Status:        StatusPending,
		CoverLetter:   req.CoverLetter,
		AppliedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("Created application",
		zap.Uint("applicationID", app.ID),
		zap.Uint("volunteerID", profile.ID),
		zap.Uint("opportunityID", req.OpportunityID))
	return app, nil
}
