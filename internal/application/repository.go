// File: internal/application/repository.go
package application

import (
	"context"
	"fmt"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"
)

// Repository defines the interface for application data operations.
type Repository interface {
	Create(ctx context.Context, app *Application) error
	FindByVolunteerID(ctx context.Context, volunteerID uint) ([]Application, error)
	// FindByOpportunityIDs fetches applications across a set of opportunities
	// in a single query.
	FindByOpportunityIDs(ctx context.Context, opportunityIDs []uint) ([]Application, error)
}

type gormRepository struct {
	handle *database.Handle
}

// NewGORMRepository creates a new GORM application repository.
func NewGORMRepository(handle *database.Handle) Repository {
	return &gormRepository{handle: handle}
}

func (r *gormRepository) Create(ctx context.Context, app *Application) error {
	db, ok := r.handle.DB()
	if !ok {
		return common.ErrServiceUnavailable.WithDetails("Database not available.")
	}

	if err := db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByVolunteerID(ctx context.Context, volunteerID uint) ([]Application, error) {
	db, ok := r.handle.DB()
	if !ok {
		return []Application{}, nil
	}

	var apps []Application
	err := db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *gormRepository) FindByOpportunityIDs(ctx context.Context, opportunityIDs []uint) ([]Application, error) {
	if len(opportunityIDs) == 0 {
		return []Application{}, nil
	}

	db, ok := r.handle.DB()
	if !ok {
		return []Application{}, nil
	}

	var apps []Application
	err := db.WithContext(ctx).
		Where("opportunity_id IN ?", opportunityIDs).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
