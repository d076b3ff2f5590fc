// File: internal/opportunity/repository.go
package opportunity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"

	"gorm.io/gorm"
)

// Repository defines the interface for opportunity data operations.
type Repository interface {
	Create(ctx context.Context, opp *Opportunity) error
	FindByID(ctx context.Context, id uint) (*Opportunity, error)
	FindActive(ctx context.Context) ([]Opportunity, error)
	FindByOrganizationID(ctx context.Context, organizationID uint) ([]Opportunity, error)
	FindIDsByOrganizationID(ctx context.Context, organizationID uint) ([]uint, error)
	FindExpired(ctx context.Context, now time.Time) ([]Opportunity, error)
	UpdateStatus(ctx context.Context, id uint, status OpportunityStatus) error
}

type gormRepository struct {
	handle *database.Handle
}

// NewGORMRepository creates a new GORM opportunity repository.
func NewGORMRepository(handle *database.Handle) Repository {
	return &gormRepository{handle: handle}
}

func (r *gormRepository) Create(ctx context.Context, opp *Opportunity) error {
	db, ok := r.handle.DB()
	if !ok {
		return common.ErrServiceUnavailable.WithDetails("Database not available.")
	}

	if err := db.WithContext(ctx).Create(opp).Error; err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uint) (*Opportunity, error) {
	db, ok := r.handle.DB()
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Opportunity not found.")
	}

	var opp Opportunity
	err := db.WithContext(ctx).First(&opp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Opportunity not found.")
		}
		return nil, err
	}
	return &opp, nil
}

// FindActive returns all active opportunities, newest first.
func (r *gormRepository) FindActive(ctx context.Context) ([]Opportunity, error) {
	db, ok := r.handle.DB()
	if !ok {
		return []Opportunity{}, nil
	}

	var opps []Opportunity
	err := db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("created_at DESC").
		Find(&opps).Error
	if err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *gormRepository) FindByOrganizationID(ctx context.Context, organizationID uint) ([]Opportunity, error) {
	db, ok := r.handle.DB()
	if !ok {
		return []Opportunity{}, nil
	}

	var opps []Opportunity
	err := db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&opps).Error
	if err != nil {
		return nil, err
	}
	return opps, nil
}

// FindIDsByOrganizationID returns only the ids of an organization's
// opportunities, for callers that feed them into an IN clause.
func (r *gormRepository) FindIDsByOrganizationID(ctx context.Context, organizationID uint) ([]uint, error) {
	db, ok := r.handle.DB()
	if !ok {
		return []uint{}, nil
	}

	var ids []uint
	err := db.WithContext(ctx).
		Model(&Opportunity{}).
		Where("organization_id = ?", organizationID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FindExpired returns active opportunities whose end date has passed.
func (r *gormRepository) FindExpired(ctx context.Context, now time.Time) ([]Opportunity, error) {
	db, ok := r.handle.DB()
	if !ok {
		return []Opportunity{}, nil
	}

	var opps []Opportunity
	err := db.WithContext(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", StatusActive, now).
		Find(&opps).Error
	if err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id uint, status OpportunityStatus) error {
	db, ok := r.handle.DB()
	if !ok {
		return common.ErrServiceUnavailable.WithDetails("Database not available.")
	}

	result := db.WithContext(ctx).
		Model(&Opportunity{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Opportunity not found.")
	}
	return nil
}
