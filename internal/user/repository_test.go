// File: internal/user/repository_test.go
package user

import (
	"context"
	"testing"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return NewGORMRepository(database.HandleFor(db), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestUpsertCreatesThenMerges(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	err := repo.Upsert(ctx, UserUpsert{
		OpenID:      "open-1",
		Name:        strPtr("Ana"),
		Email:       strPtr("ana@example.com"),
		LoginMethod: strPtr("google.com"),
	})
	require.NoError(t, err)

	first, err := repo.FindByOpenID(ctx, "open-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", *first.Name)
	assert.Equal(t, "ana@example.com", *first.Email)
	assert.Equal(t, "user", first.Role)
	assert.False(t, first.LastSignedIn.IsZero())

	time.Sleep(10 * time.Millisecond)

	// Second sign-in supplies only a new name; email must survive the merge.
	err = repo.Upsert(ctx, UserUpsert{OpenID: "open-1", Name: strPtr("Ana Maria")})
	require.NoError(t, err)

	second, err := repo.FindByOpenID(ctx, "open-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana Maria", *second.Name)
	assert.Equal(t, "ana@example.com", *second.Email)

	var count int64
	// Still a single row after two upserts for the same identity.
	fullRepo := repo.(*gormRepository)
	db, ok := fullRepo.handle.DB()
	require.True(t, ok)
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertHonorsExplicitRole(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	err := repo.Upsert(ctx, UserUpsert{OpenID: "open-admin", Role: strPtr(common.RoleAdmin)})
	require.NoError(t, err)

	stored, err := repo.FindByOpenID(ctx, "open-admin")
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, stored.Role)

	// Role is untouched when not supplied on the next sign-in.
	err = repo.Upsert(ctx, UserUpsert{OpenID: "open-admin", Name: strPtr("Owner")})
	require.NoError(t, err)

	stored, err = repo.FindByOpenID(ctx, "open-admin")
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, stored.Role)
}

func TestUpsertWithNoFieldsStillStampsLastSignedIn(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, UserUpsert{OpenID: "open-bare"}))
	first, err := repo.FindByOpenID(ctx, "open-bare")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, repo.Upsert(ctx, UserUpsert{OpenID: "open-bare"}))
	second, err := repo.FindByOpenID(ctx, "open-bare")
	require.NoError(t, err)

	assert.True(t, second.LastSignedIn.After(first.LastSignedIn),
		"a bare re-sign-in must still advance last_signed_in")
}

func TestUpsertRequiresOpenID(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.Upsert(context.Background(), UserUpsert{OpenID: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestUpsertExplicitLastSignedIn(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, UserUpsert{OpenID: "open-ts", LastSignedIn: &at}))

	stored, err := repo.FindByOpenID(ctx, "open-ts")
	require.NoError(t, err)
	assert.WithinDuration(t, at, stored.LastSignedIn, time.Second)
}

func TestFindByOpenIDNotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.FindByOpenID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepositoryDegradedMode(t *testing.T) {
	repo := NewGORMRepository(database.Disconnected(), zap.NewNop())
	ctx := context.Background()

	err := repo.Upsert(ctx, UserUpsert{OpenID: "open-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)

	// Reads degrade to not-found rather than surfacing the outage.
	_, err = repo.FindByOpenID(ctx, "open-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
