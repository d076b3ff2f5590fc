// File: internal/user/service_test.go
package user

import (
	"context"
	"testing"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/config"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockRepository records upserts and serves rows from an in-memory map.
type mockRepository struct {
	rows    map[string]*User
	upserts []UserUpsert
	nextID  uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{rows: make(map[string]*User)}
}

func (m *mockRepository) Upsert(ctx context.Context, up UserUpsert) error {
	m.upserts = append(m.upserts, up)

	row, exists := m.rows[up.OpenID]
	if !exists {
		m.nextID++
		row = &User{OpenID: up.OpenID, Role: common.RoleUser}
		row.ID = m.nextID
		m.rows[up.OpenID] = row
	}
	if up.Name != nil {
		row.Name = up.Name
	}
	if up.Email != nil {
		row.Email = up.Email
	}
	if up.LoginMethod != nil {
		row.LoginMethod = up.LoginMethod
	}
	if up.Role != nil {
		row.Role = *up.Role
	}
	if up.LastSignedIn != nil {
		row.LastSignedIn = *up.LastSignedIn
	} else {
		row.LastSignedIn = time.Now().UTC()
	}
	return nil
}

func (m *mockRepository) FindByOpenID(ctx context.Context, openID string) (*User, error) {
	row, ok := m.rows[openID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return row, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, row := range m.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, common.ErrNotFound
}

func testToken(uid string, claims map[string]interface{}, provider string) *firebaseauth.Token {
	if claims == nil {
		claims = map[string]interface{}{}
	}
	return &firebaseauth.Token{
		UID:      uid,
		Claims:   claims,
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: provider},
	}
}

func TestSyncFromTokenMapsClaims(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &config.Config{}, zap.NewNop())

	token := testToken("uid-1", map[string]interface{}{
		"name":  "Carlos",
		"email": "carlos@example.com",
	}, "google.com")

	usr, wasCreated, err := svc.SyncFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, "uid-1", usr.OpenID)
	assert.Equal(t, "Carlos", *usr.Name)
	assert.Equal(t, "carlos@example.com", *usr.Email)
	assert.Equal(t, "google.com", *usr.LoginMethod)
	assert.Equal(t, common.RoleUser, usr.Role)

	require.Len(t, repo.upserts, 1)
	assert.Nil(t, repo.upserts[0].Role, "non-owner sign-in must not supply an explicit role")
}

func TestSyncFromTokenSecondSignInIsNotCreated(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &config.Config{}, zap.NewNop())
	token := testToken("uid-1", nil, "password")

	_, wasCreated, err := svc.SyncFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, wasCreated)

	_, wasCreated, err = svc.SyncFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, wasCreated)
}

func TestSyncFromTokenElevatesOwner(t *testing.T) {
	repo := newMockRepository()
	cfg := &config.Config{OwnerOpenID: "owner-uid"}
	svc := NewService(repo, cfg, zap.NewNop())

	usr, _, err := svc.SyncFromToken(context.Background(), testToken("owner-uid", nil, "google.com"))
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, usr.Role)

	other, _, err := svc.SyncFromToken(context.Background(), testToken("someone-else", nil, "google.com"))
	require.NoError(t, err)
	assert.Equal(t, common.RoleUser, other.Role)
}

func TestSyncFromTokenRejectsEmptySubject(t *testing.T) {
	svc := NewService(newMockRepository(), &config.Config{}, zap.NewNop())

	_, _, err := svc.SyncFromToken(context.Background(), &firebaseauth.Token{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, _, err = svc.SyncFromToken(context.Background(), nil)
	require.Error(t, err)
}

func TestGetUserByOpenIDValidatesInput(t *testing.T) {
	svc := NewService(newMockRepository(), &config.Config{}, zap.NewNop())

	_, err := svc.GetUserByOpenID(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
