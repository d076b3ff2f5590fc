// File: tests/integration/api_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volunteer_hub_backend/internal/app"
	"volunteer_hub_backend/internal/application"
	"volunteer_hub_backend/internal/auth"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/jobs"
	"volunteer_hub_backend/internal/middleware"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/user"
	"volunteer_hub_backend/internal/volunteer"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubVerifier resolves bearer tokens from a fixed map instead of calling
// the external identity provider.
type stubVerifier struct {
	tokens map[string]*firebaseauth.Token
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	token, ok := s.tokens[idToken]
	if !ok {
		return nil, fmt.Errorf("unknown token")
	}
	return token, nil
}

func stubToken(uid, name string) *firebaseauth.Token {
	return &firebaseauth.Token{
		UID:     uid,
		Expires: time.Now().Add(time.Hour).Unix(),
		Claims:  map[string]interface{}{"name": name, "email": uid + "@example.com"},
		Firebase: firebaseauth.FirebaseInfo{
			SignInProvider: "google.com",
		},
	}
}

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupAPI(t *testing.T, verifier *stubVerifier, ownerOpenID string) *testAPI {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		GinMode:           gin.TestMode,
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		OwnerOpenID:       ownerOpenID,
		SessionCookieName: "vh_session",
	}
	logger := zap.NewNop()
	handle := database.HandleFor(db)

	blocklist := auth.NewInMemoryBlocklistService(auth.InMemoryBlocklistConfig{
		DefaultExpiration: time.Hour,
		CleanupInterval:   time.Hour,
	})
	userRepo := user.NewGORMRepository(handle, logger)
	userSvc := user.NewService(userRepo, cfg, logger)
	authenticator := middleware.NewAuthenticator(verifier, userSvc, blocklist, logger)
	authHandler := auth.NewHandler(verifier, blocklist, cfg, logger)

	volSvc := volunteer.NewService(volunteer.NewGORMRepository(handle), logger)
	volHandler := volunteer.NewHandler(volSvc, logger)
	orgSvc := organization.NewService(organization.NewGORMRepository(handle), logger)
	orgHandler := organization.NewHandler(orgSvc, logger)
	oppRepo := opportunity.NewGORMRepository(handle)
	oppSvc := opportunity.NewService(oppRepo, orgSvc, logger)
	oppHandler := opportunity.NewHandler(oppSvc, logger)
	appSvc := application.NewService(application.NewGORMRepository(handle), volSvc, orgSvc, oppRepo, logger)
	appHandler := application.NewHandler(appSvc, logger)

	var expiryJob *jobs.OpportunityExpiryJob

	server, err := app.NewServer(cfg, logger, handle, authenticator, authHandler,
		volHandler, orgHandler, oppHandler, appHandler, expiryJob)
	require.NoError(t, err)

	return &testAPI{router: server.Router(), db: db}
}

func (a *testAPI) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestFullVolunteerFlow(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"org-token": stubToken("org-uid", "Org Owner"),
		"vol-token": stubToken("vol-uid", "Volunteer"),
	}}
	api := setupAPI(t, verifier, "")

	// First sign-in materializes the user row.
	rec := api.do(t, http.MethodGet, "/api/v1/auth/me", "org-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeData(t, rec)
	assert.Equal(t, "org-uid", me["open_id"])
	assert.Equal(t, "user", me["role"])

	// Organization owner sets up a profile and publishes an opportunity.
	rec = api.do(t, http.MethodPost, "/api/v1/organizations/profile", "org-token",
		gin.H{"name": "Educação para Todos"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/opportunities", "org-token", gin.H{
		"title":       "Professor Voluntário - Reforço Escolar",
		"description": "Reforço escolar em matemática e português.",
		"location":    "São Paulo, SP",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	opp := decodeData(t, rec)
	assert.Equal(t, "active", opp["status"])
	oppID := uint(opp["id"].(float64))

	// The opportunity is publicly listed, no auth needed.
	rec = api.do(t, http.MethodGet, "/api/v1/opportunities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Professor Voluntário")

	rec = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/opportunities/%d", oppID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Volunteer creates a profile and applies.
	rec = api.do(t, http.MethodPost, "/api/v1/volunteers/profile", "vol-token",
		gin.H{"skills": []string{"Ensino", "Paciência"}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/applications", "vol-token",
		gin.H{"opportunity_id": oppID})
	require.Equal(t, http.StatusCreated, rec.Code)
	appData := decodeData(t, rec)
	assert.Equal(t, "pending", appData["status"])

	// Both sides see the application.
	rec = api.do(t, http.MethodGet, "/api/v1/applications/mine", "vol-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")

	rec = api.do(t, http.MethodGet, "/api/v1/applications/received", "org-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	api := setupAPI(t, &stubVerifier{tokens: map[string]*firebaseauth.Token{}}, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/volunteers/profile"},
		{http.MethodGet, "/api/v1/organizations/profile"},
		{http.MethodGet, "/api/v1/opportunities/mine"},
		{http.MethodGet, "/api/v1/applications/mine"},
		{http.MethodGet, "/api/v1/applications/received"},
		{http.MethodPost, "/api/v1/opportunities"},
		{http.MethodPost, "/api/v1/applications"},
	} {
		rec := api.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestAuthMeAnonymousIsNull(t *testing.T) {
	api := setupAPI(t, &stubVerifier{tokens: map[string]*firebaseauth.Token{}}, "")

	rec := api.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeData(t, rec))
}

func TestOwnerElevation(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"owner-token": stubToken("the-owner", "Owner"),
	}}
	api := setupAPI(t, verifier, "the-owner")

	rec := api.do(t, http.MethodGet, "/api/v1/auth/me", "owner-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeData(t, rec)["role"])
}

func TestLogoutRevokesToken(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"vol-token": stubToken("vol-uid", "Volunteer"),
	}}
	api := setupAPI(t, verifier, "")

	rec := api.do(t, http.MethodPost, "/api/v1/auth/logout", "vol-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The revoked token no longer authenticates protected routes.
	rec = api.do(t, http.MethodGet, "/api/v1/volunteers/profile", "vol-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logout stays idempotent for anonymous callers too.
	rec = api.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOpportunityWithoutOrganizationIs422(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"vol-token": stubToken("vol-uid", "Volunteer"),
	}}
	api := setupAPI(t, verifier, "")

	rec := api.do(t, http.MethodPost, "/api/v1/opportunities", "vol-token", gin.H{
		"title":       "Sem Organização",
		"description": "d",
		"location":    "São Paulo, SP",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestValidationFailureIs422(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"org-token": stubToken("org-uid", "Org Owner"),
	}}
	api := setupAPI(t, verifier, "")

	rec := api.do(t, http.MethodPost, "/api/v1/opportunities", "org-token", gin.H{
		"description": "missing title and location",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRepeatedSignInRefreshesLastSignedIn(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"vol-token": stubToken("vol-uid", "Volunteer"),
	}}
	api := setupAPI(t, verifier, "")

	rec := api.do(t, http.MethodGet, "/api/v1/auth/me", "vol-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeData(t, rec)["last_signed_in"].(string)

	time.Sleep(10 * time.Millisecond)

	rec = api.do(t, http.MethodGet, "/api/v1/auth/me", "vol-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeData(t, rec)["last_signed_in"].(string)

	firstTime, err := time.Parse(time.RFC3339Nano, first)
	require.NoError(t, err)
	secondTime, err := time.Parse(time.RFC3339Nano, second)
	require.NoError(t, err)
	assert.True(t, secondTime.After(firstTime))

	// Still a single user row.
	var count int64
	require.NoError(t, api.db.Model(&user.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDegradedModeEndToEnd(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*firebaseauth.Token{
		"vol-token": stubToken("vol-uid", "Volunteer"),
	}}

	cfg := &config.Config{GinMode: gin.TestMode, SessionCookieName: "vh_session"}
	logger := zap.NewNop()
	handle := database.Disconnected()

	blocklist := auth.NewInMemoryBlocklistService(auth.InMemoryBlocklistConfig{
		DefaultExpiration: time.Hour, CleanupInterval: time.Hour,
	})
	userSvc := user.NewService(user.NewGORMRepository(handle, logger), cfg, logger)
	authenticator := middleware.NewAuthenticator(verifier, userSvc, blocklist, logger)
	authHandler := auth.NewHandler(verifier, blocklist, cfg, logger)
	volSvc := volunteer.NewService(volunteer.NewGORMRepository(handle), logger)
	orgSvc := organization.NewService(organization.NewGORMRepository(handle), logger)
	oppRepo := opportunity.NewGORMRepository(handle)
	oppSvc := opportunity.NewService(oppRepo, orgSvc, logger)
	appSvc := application.NewService(application.NewGORMRepository(handle), volSvc, orgSvc, oppRepo, logger)

	server, err := app.NewServer(cfg, logger, handle, authenticator, authHandler,
		volunteer.NewHandler(volSvc, logger), organization.NewHandler(orgSvc, logger),
		opportunity.NewHandler(oppSvc, logger), application.NewHandler(appSvc, logger), nil)
	require.NoError(t, err)

	api := &testAPI{router: server.Router()}

	// Public reads stay up and empty.
	rec := api.do(t, http.MethodGet, "/api/v1/opportunities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Identity cannot be persisted, so optional-auth routes treat the
	// caller as anonymous.
	rec = api.do(t, http.MethodGet, "/api/v1/auth/me", "vol-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeData(t, rec))

	// On strict-auth routes the failed identity upsert propagates: the
	// token is valid, so this is the write-path outage, not a 401.
	rec = api.do(t, http.MethodPost, "/api/v1/volunteers/profile", "vol-token", gin.H{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")

	// A request with no token at all is still a plain 401.
	rec = api.do(t, http.MethodPost, "/api/v1/volunteers/profile", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health reports degraded, not down.
	rec = api.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEGRADED")
}
