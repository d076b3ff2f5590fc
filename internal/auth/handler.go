// File: internal/auth/handler.go
package auth

import (
	"net/http"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	verifier  shared.TokenVerifier
	blocklist TokenBlocklistService
	cfg       *config.Config
	logger    *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(
	verifier shared.TokenVerifier,
	blocklist TokenBlocklistService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		verifier:  verifier,
		blocklist: blocklist,
		cfg:       cfg,
		logger:    logger,
	}
}

// RegisterRoutes sets up the routes for session operations. Both routes are
// public: they resolve the caller when credentials are presented but never
// reject anonymous requests, so they are registered behind the optional
// variant of the auth middleware.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, optionalAuthMiddleware gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	authGroup.Use(optionalAuthMiddleware)
	{
		authGroup.GET("/me", h.me)
		authGroup.POST("/logout", h.logout)
	}
}

// me returns the authenticated caller, or a null payload when the request
// carries no usable identity. Anonymous callers are not an error here.
func (h *Handler) me(c *gin.Context) {
	currentUser, ok := c.Get(common.UserKey)
	if !ok {
		common.RespondOK(c, "No authenticated user.", nil)
		return
	}
	usr, ok := currentUser.(*shared.User)
	if !ok || usr == nil {
		common.RespondOK(c, "No authenticated user.", nil)
		return
	}
	common.RespondOK(c, "Authenticated user retrieved.", shared.ToUserResponse(usr))
}

// logout clears the session cookie and revokes the presented token for its
// remaining lifetime. It succeeds regardless of whether the caller was
// signed in, so repeated calls are harmless.
func (h *Handler) logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if rawToken := common.GetTokenFromContext(c); rawToken != "" {
		token, verifyErr := h.verifier.VerifyIDToken(c.Request.Context(), rawToken)
		if verifyErr == nil {
			expiresAt := time.Unix(token.Expires, 0)
			if blErr := h.blocklist.AddToBlocklist(c.Request.Context(), rawToken, expiresAt); blErr != nil {
				h.logger.Warn("Failed to blocklist token on logout", zap.Error(blErr))
			}
		}
	}

	common.RespondOK(c, "Logged out successfully.", gin.H{"success": true})
}
