// File: internal/volunteer/service.go
package volunteer

import (
	"context"
	"errors"

	"volunteer_hub_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for volunteer profile business logic.
type Service interface {
	// GetProfile returns the caller's volunteer profile, or nil when none
	// exists. A missing profile is not an error.
	GetProfile(ctx context.Context, userID uint) (*Volunteer, error)
	CreateProfile(ctx context.Context, userID uint, req CreateProfileRequest) (*Volunteer, error)
}

// ServiceImplementation provides volunteer profile business logic.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new volunteer service instance.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, logger: logger}
}

func (s *ServiceImplementation) GetProfile(ctx context.Context, userID uint) (*Volunteer, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ServiceImplementation) CreateProfile(ctx context.Context, userID uint, req CreateProfileRequest) (*Volunteer, error) {
	profile := &Volunteer{
		UserID:       userID,
		Bio:          req.Bio,
		Skills:       common.EncodeStringList(req.Skills),
		Availability: req.Availability,
		Phone:        req.Phone,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Created volunteer profile",
		zap.Uint("profileID", profile.ID), zap.Uint("userID", userID))
	return profile, nil
}
