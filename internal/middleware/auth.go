// File: internal/middleware/auth.go
package middleware

import (
	"volunteer_hub_backend/internal/auth"
	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator bundles the dependencies of the identity middleware so both
// the strict and optional variants share one resolution path.
type Authenticator struct {
	verifier    shared.TokenVerifier
	userService shared.Service
	blocklist   auth.TokenBlocklistService
	logger      *zap.Logger
}

// NewAuthenticator creates the identity middleware factory.
func NewAuthenticator(
	verifier shared.TokenVerifier,
	userService shared.Service,
	blocklist auth.TokenBlocklistService,
	logger *zap.Logger,
) *Authenticator {
	return &Authenticator{
		verifier:    verifier,
		userService: userService,
		blocklist:   blocklist,
		logger:      logger,
	}
}

// resolve turns the request's bearer token into a persisted user. Every
// successful resolution passes through the users table, so each authenticated
// request refreshes last_signed_in.
func (a *Authenticator) resolve(c *gin.Context) (*shared.User, error) {
	rawToken := common.GetTokenFromContext(c)
	if rawToken == "" {
		return nil, common.ErrUnauthorized.WithDetails("Authorization header with a Bearer token is required.")
	}

	if blocked, err := a.blocklist.IsBlocklisted(c.Request.Context(), rawToken); err != nil {
		a.logger.Warn("Blocklist lookup failed", zap.Error(err))
	} else if blocked {
		return nil, common.ErrUnauthorized.WithDetails("Token has been revoked.")
	}

	token, err := a.verifier.VerifyIDToken(c.Request.Context(), rawToken)
	if err != nil {
		a.logger.Debug("Identity token verification failed", zap.Error(err))
		return nil, common.ErrUnauthorized.WithDetails("Invalid or expired identity token.")
	}

	usr, _, err := a.userService.SyncFromToken(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

func setCallerContext(c *gin.Context, usr *shared.User) {
	c.Set(common.UserKey, usr)
	c.Set(common.UserIDKey, usr.ID)
	c.Set(common.UserRoleKey, usr.Role)
	c.Set(common.OpenIDKey, usr.OpenID)
}

// Authenticate is the strict variant: requests without a valid identity are
// rejected before the handler runs.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, err := a.resolve(c)
		if err != nil {
			if _, ok := common.IsAPIError(err); ok {
				common.RespondWithError(c, err)
			} else {
				common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authentication failed."))
			}
			return
		}

		setCallerContext(c, usr)
		c.Next()
	}
}

// AuthenticateOptional resolves the caller when credentials are presented but
// lets anonymous or unresolvable requests through without identity attached.
func (a *Authenticator) AuthenticateOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, err := a.resolve(c)
		if err != nil {
			c.Next()
			return
		}

		setCallerContext(c, usr)
		c.Next()
	}
}
