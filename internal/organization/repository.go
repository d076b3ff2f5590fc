// File: internal/organization/repository.go
package organization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"

	"gorm.io/gorm"
)

// Repository defines the interface for organization profile data operations.
type Repository interface {
	FindByUserID(ctx context.Context, userID uint) (*Organization, error)
	Create(ctx context.Context, profile *Organization) error
}

type gormRepository struct {
	handle *database.Handle
}

// NewGORMRepository creates a new GORM organization repository.
func NewGORMRepository(handle *database.Handle) Repository {
	return &gormRepository{handle: handle}
}

func (r *gormRepository) FindByUserID(ctx context.Context, userID uint) (*Organization, error) {
	db, ok := r.handle.DB()
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Organization profile not found.")
	}

	var profile Organization
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Organization profile not found.")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormRepository) Create(ctx context.Context, profile *Organization) error {
	db, ok := r.handle.DB()
	if !ok {
		return common.ErrServiceUnavailable.WithDetails("Database not available.")
	}

	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithDetails("An organization profile already exists for this user.")
		}
		return fmt.Errorf("failed to create organization profile: %w", err)
	}
	return nil
}
