// File: internal/organization/service.go
package organization

import (
	"context"
	"errors"

	"volunteer_hub_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for organization profile business logic.
type Service interface {
	// GetProfile returns the caller's organization profile, or nil when none
	// exists. A missing profile is not an error.
	GetProfile(ctx context.Context, userID uint) (*Organization, error)
	CreateProfile(ctx context.Context, userID uint, req CreateProfileRequest) (*Organization, error)
}

// ServiceImplementation provides organization profile business logic.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new organization service instance.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, logger: logger}
}

func (s *ServiceImplementation) GetProfile(ctx context.Context, userID uint) (*Organization, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ServiceImplementation) CreateProfile(ctx context.Context, userID uint, req CreateProfileRequest) (*Organization, error) {
	profile := &Organization{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Phone:       req.Phone,
		Location:    req.Location,
		Logo:        req.Logo,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Created organization profile",
		zap.Uint("profileID", profile.ID), zap.Uint("userID", userID),
		zap.String("name", profile.Name))
	return profile, nil
}
