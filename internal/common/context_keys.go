// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for the authorization token.
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens.
	AuthorizationTypeBearer = "Bearer"
	// UserKey is the context key for the authenticated caller (*shared.User).
	UserKey = "authUser"
	// UserIDKey is the context key for the authenticated caller's ID.
	UserIDKey = "userID"
	// UserRoleKey is the context key for the authenticated caller's role.
	UserRoleKey = "userRole"
	// OpenIDKey is the context key for the caller's external open id.
	OpenIDKey = "openID"
)
