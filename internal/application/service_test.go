// File: internal/application/service_test.go
package application

import (
	"context"
	"testing"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/user"
	"volunteer_hub_backend/internal/volunteer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	svc    *ServiceImplementation
	volSvc volunteer.Service
	orgSvc organization.Service
	oppSvc opportunity.Service
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &volunteer.Volunteer{}, &organization.Organization{},
		&opportunity.Opportunity{}, &Application{},
	))

	handle := database.HandleFor(db)
	logger := zap.NewNop()
	volSvc := volunteer.NewService(volunteer.NewGORMRepository(handle), logger)
	orgSvc := organization.NewService(organization.NewGORMRepository(handle), logger)
	oppRepo := opportunity.NewGORMRepository(handle)
	oppSvc := opportunity.NewService(oppRepo, orgSvc, logger)
	svc := NewService(NewGORMRepository(handle), volSvc, orgSvc, oppRepo, logger)
	return &testEnv{svc: svc, volSvc: volSvc, orgSvc: orgSvc, oppSvc: oppSvc, db: db}
}

func (e *testEnv) seedUser(t *testing.T, openID string) uint {
	t.Helper()
	usr := user.User{OpenID: openID, Role: common.RoleUser, LastSignedIn: time.Now().UTC()}
	require.NoError(t, e.db.Create(&usr).Error)
	return usr.ID
}

func (e *testEnv) seedVolunteer(t *testing.T, openID string) uint {
	t.Helper()
	userID := e.seedUser(t, openID)
	_, err := e.volSvc.CreateProfile(context.Background(), userID, volunteer.CreateProfileRequest{})
	require.NoError(t, err)
	return userID
}

func (e *testEnv) seedOpportunity(t *testing.T, orgOwnerOpenID, title string) (orgUserID uint, oppID uint) {
	t.Helper()
	ctx := context.Background()
	orgUserID = e.seedUser(t, orgOwnerOpenID)
	_, err := e.orgSvc.CreateProfile(ctx, orgUserID, organization.CreateProfileRequest{Name: "Org " + orgOwnerOpenID})
	require.NoError(t, err)
	opp, err := e.oppSvc.Create(ctx, orgUserID, opportunity.CreateOpportunityRequest{
		Title: title, Description: "d", Location: "São Paulo, SP",
	})
	require.NoError(t, err)
	return orgUserID, opp.ID
}

func TestCreateRequiresVolunteerProfile(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.seedUser(t, "no-profile")

	_, err := env.svc.Create(context.Background(), userID, CreateApplicationRequest{OpportunityID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnprocessableEntity)
}

func TestCreateRequiresExistingOpportunity(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.seedVolunteer(t, "vol-1")

	_, err := env.svc.Create(context.Background(), userID, CreateApplicationRequest{OpportunityID: 999})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateStartsPending(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	userID := env.seedVolunteer(t, "vol-1")
	_, oppID := env.seedOpportunity(t, "org-1", "Professor Voluntário")

	app, err := env.svc.Create(ctx, userID, CreateApplicationRequest{OpportunityID: oppID})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, app.Status)
	assert.False(t, app.AppliedAt.IsZero())

	mine, err := env.svc.GetByCallerVolunteer(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, app.ID, mine[0].ID)
}

func TestGetByCallerVolunteerWithoutProfileIsEmpty(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.seedUser(t, "plain")

	apps, err := env.svc.GetByCallerVolunteer(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestGetReceivedSpansAllOrganizationOpportunities(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	// One organization with two opportunities, plus an unrelated organization.
	orgUserID, opp1 := env.seedOpportunity(t, "org-multi", "Oportunidade A")
	opp2Model, err := env.oppSvc.Create(ctx, orgUserID, opportunity.CreateOpportunityRequest{
		Title: "Oportunidade B", Description: "d", Location: "São Paulo, SP",
	})
	require.NoError(t, err)
	_, otherOpp := env.seedOpportunity(t, "org-other", "Oportunidade Alheia")

	vol1 := env.seedVolunteer(t, "vol-1")
	vol2 := env.seedVolunteer(t, "vol-2")

	_, err = env.svc.Create(ctx, vol1, CreateApplicationRequest{OpportunityID: opp1})
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, vol2, CreateApplicationRequest{OpportunityID: opp2Model.ID})
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, vol1, CreateApplicationRequest{OpportunityID: otherOpp})
	require.NoError(t, err)

	received, err := env.svc.GetReceivedByCallerOrganization(ctx, orgUserID)
	require.NoError(t, err)
	require.Len(t, received, 2)
	ids := map[uint]bool{received[0].OpportunityID: true, received[1].OpportunityID: true}
	assert.True(t, ids[opp1])
	assert.True(t, ids[opp2Model.ID])
}

func TestGetReceivedWithoutOrganizationIsEmpty(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.seedUser(t, "plain")

	apps, err := env.svc.GetReceivedByCallerOrganization(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestDegradedModeWrite(t *testing.T) {
	handle := database.Disconnected()
	logger := zap.NewNop()
	volSvc := volunteer.NewService(volunteer.NewGORMRepository(handle), logger)
	orgSvc := organization.NewService(organization.NewGORMRepository(handle), logger)
	oppRepo := opportunity.NewGORMRepository(handle)
	svc := NewService(NewGORMRepository(handle), volSvc, orgSvc, oppRepo, logger)

	// Without a database the volunteer profile cannot be resolved, so the
	// write is rejected before reaching the applications table.
	_, err := svc.Create(context.Background(), 1, CreateApplicationRequest{OpportunityID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnprocessableEntity)
}
