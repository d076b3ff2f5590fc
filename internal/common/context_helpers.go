// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTokenFromContext retrieves the bearer token string from the Authorization
// header. Returns an empty string if the header is missing or malformed.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetUserIDFromContext retrieves the caller's user ID from the Gin context.
// Returns 0 if no authenticated caller is attached.
func GetUserIDFromContext(c *gin.Context) uint {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0
	}
	userID, ok := val.(uint)
	if !ok {
		return 0
	}
	return userID
}

// GetUserRoleFromContext retrieves the caller's role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) string {
	val, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	role, ok := val.(string)
	if !ok {
		return ""
	}
	return role
}

// GetOpenIDFromContext retrieves the caller's external open id from the Gin
// context.
func GetOpenIDFromContext(c *gin.Context) string {
	val, exists := c.Get(OpenIDKey)
	if !exists {
		return ""
	}
	openID, ok := val.(string)
	if !ok {
		return ""
	}
	return openID
}
