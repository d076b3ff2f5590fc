// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/shared"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// ServiceImplementation provides user identity business logic.
type ServiceImplementation struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

var _ shared.Service = (*ServiceImplementation)(nil)

// NewService creates a new user service instance.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, cfg: cfg, logger: logger}
}

// SyncFromToken reconciles a verified identity token into the users table.
// Profile claims present on the token are merged into the stored row; absent
// claims leave existing values untouched. The configured owner open id is
// elevated to admin on every sign-in. Returns the persisted user and whether
// this sign-in created the row.
func (s *ServiceImplementation) SyncFromToken(ctx context.Context, token *firebaseauth.Token) (*shared.User, bool, error) {
	if token == nil || token.UID == "" {
		return nil, false, common.ErrUnauthorized.WithDetails("Identity token carries no subject.")
	}

	now := time.Now().UTC()
	up := UserUpsert{OpenID: token.UID, LastSignedIn: &now}
	if name, ok := token.Claims["name"].(string); ok && name != "" {
		up.Name = &name
	}
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		up.Email = &email
	}
	if provider := token.Firebase.SignInProvider; provider != "" {
		up.LoginMethod = &provider
	}
	if s.cfg.OwnerOpenID != "" && token.UID == s.cfg.OwnerOpenID {
		admin := common.RoleAdmin
		up.Role = &admin
	}

	wasCreated := false
	if _, err := s.repo.FindByOpenID(ctx, token.UID); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, false, err
		}
		wasCreated = true
	}

	if err := s.repo.Upsert(ctx, up); err != nil {
		s.logger.Error("Failed to sync user from identity token",
			zap.Error(err), zap.String("openID", token.UID))
		return nil, false, err
	}

	stored, err := s.repo.FindByOpenID(ctx, token.UID)
	if err != nil {
		return nil, false, err
	}
	if wasCreated {
		s.logger.Info("Created user from first sign-in",
			zap.Uint("userID", stored.ID), zap.String("openID", stored.OpenID))
	}
	return DBToShared(stored), wasCreated, nil
}

// GetUserByID retrieves a user by their internal numeric id.
func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uint) (*shared.User, error) {
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return DBToShared(stored), nil
}

// GetUserByOpenID retrieves a user by their external open id.
func (s *ServiceImplementation) GetUserByOpenID(ctx context.Context, openID string) (*shared.User, error) {
	openID = strings.TrimSpace(openID)
	if openID == "" {
		return nil, common.ErrBadRequest.WithDetails("Open id must not be empty.")
	}
	stored, err := s.repo.FindByOpenID(ctx, openID)
	if err != nil {
		return nil, err
	}
	return DBToShared(stored), nil
}
