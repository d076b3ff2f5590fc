// File: internal/organization/service_test.go
package organization

import (
	"context"
	"testing"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (*ServiceImplementation, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &Organization{}))

	repo := NewGORMRepository(database.HandleFor(db))
	return NewService(repo, zap.NewNop()), db
}

func seedUser(t *testing.T, db *gorm.DB, openID string) uint {
	t.Helper()
	usr := user.User{OpenID: openID, Role: common.RoleUser, LastSignedIn: time.Now().UTC()}
	require.NoError(t, db.Create(&usr).Error)
	return usr.ID
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetProfile(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	userID := seedUser(t, db, "org-1")

	created, err := svc.CreateProfile(ctx, userID, CreateProfileRequest{
		Name:        "Educação para Todos",
		Description: strPtr("ONG de reforço escolar."),
		Location:    strPtr("São Paulo, SP"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Verified)

	fetched, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Educação para Todos", fetched.Name)
}

func TestGetProfileMissingIsNilNotError(t *testing.T) {
	svc, db := setupTestService(t)
	userID := seedUser(t, db, "org-2")

	profile, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestCreateProfileTwiceConflicts(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	userID := seedUser(t, db, "org-3")

	_, err := svc.CreateProfile(ctx, userID, CreateProfileRequest{Name: "Saúde Comunitária"})
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, userID, CreateProfileRequest{Name: "Saúde Comunitária"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDegradedMode(t *testing.T) {
	svc := NewService(NewGORMRepository(database.Disconnected()), zap.NewNop())
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, profile, "degraded reads look like a missing profile")

	_, err = svc.CreateProfile(ctx, 1, CreateProfileRequest{Name: "Meio Ambiente Sustentável"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
}
