// File: internal/common/roles.go
package common

// User roles. RoleUser is the users table default; RoleAdmin is assigned to
// the configured owner identity on upsert.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
