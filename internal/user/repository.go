// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the interface for user data operations.
type Repository interface {
	// Upsert inserts or merges a user row keyed by open id. Unlike profile
	// reads, upsert failures are surfaced to the caller.
	Upsert(ctx context.Context, up UserUpsert) error
	FindByOpenID(ctx context.Context, openID string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}

type gormRepository struct {
	handle *database.Handle
	logger *zap.Logger
}

// NewGORMRepository creates a new GORM user repository.
func NewGORMRepository(handle *database.Handle, logger *zap.Logger) Repository {
	return &gormRepository{handle: handle, logger: logger}
}

// Upsert inserts a new user for the given open id, or merges the supplied
// fields into the existing row when one exists. Conflict resolution targets
// the open_id unique index, so concurrent sign-ins for the same identity
// merge instead of erroring. last_signed_in is stamped with the current time
// when not supplied, and is forced into an otherwise-empty update set so the
// update always has an effect.
func (r *gormRepository) Upsert(ctx context.Context, up UserUpsert) error {
	if strings.TrimSpace(up.OpenID) == "" {
		return common.ErrBadRequest.WithDetails("User open id is required for upsert.")
	}

	db, ok := r.handle.DB()
	if !ok {
		r.logger.Warn("Cannot upsert user: database not available", zap.String("openID", up.OpenID))
		return common.ErrServiceUnavailable.WithDetails("Database not available.")
	}

	row := User{OpenID: up.OpenID}
	updateSet := map[string]interface{}{}

	if up.Name != nil {
		row.Name = up.Name
		updateSet["name"] = *up.Name
	}
	if up.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*up.Email))
		row.Email = &email
		updateSet["email"] = email
	}
	if up.LoginMethod != nil {
		row.LoginMethod = up.LoginMethod
		updateSet["login_method"] = *up.LoginMethod
	}
	if up.Role != nil {
		row.Role = *up.Role
		updateSet["role"] = *up.Role
	}
	if up.LastSignedIn != nil {
		row.LastSignedIn = *up.LastSignedIn
		updateSet["last_signed_in"] = *up.LastSignedIn
	} else {
		row.LastSignedIn = time.Now().UTC()
	}
	if len(updateSet) == 0 {
		updateSet["last_signed_in"] = row.LastSignedIn
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updateSet),
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Failed to upsert user", zap.Error(err), zap.String("openID", up.OpenID))
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// FindByOpenID retrieves a user by their external open id. Zero rows and a
// missing database both degrade to the not-found sentinel; callers cannot
// distinguish the two through this interface.
func (r *gormRepository) FindByOpenID(ctx context.Context, openID string) (*User, error) {
	db, ok := r.handle.DB()
	if !ok {
		r.logger.Debug("Cannot get user: database not available", zap.String("openID", openID))
		return nil, common.ErrNotFound.WithDetails("User not found with this open id.")
	}

	var userModel User
	err := db.WithContext(ctx).Where("open_id = ?", openID).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this open id.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByID retrieves a user by their ID.
func (r *gormRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	db, ok := r.handle.DB()
	if !ok {
		return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
	}

	var userModel User
	err := db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
		}
		return nil, err
	}
	return &userModel, nil
}
