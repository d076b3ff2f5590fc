package shared

import (
	"context"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// User is the caller identity attached to a request once the external
// identity has been reconciled into the users table.
type User struct {
	ID           uint
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         string
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Service defines the user-identity operations needed outside the user
// package (middleware, auth handlers). Implemented by user.ServiceImplementation.
type Service interface {
	// SyncFromToken upserts the verified external identity into the users
	// table and returns the persisted row. wasCreated reports whether the
	// sign-in created a new user.
	SyncFromToken(ctx context.Context, token *firebaseauth.Token) (usr *User, wasCreated bool, err error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByOpenID(ctx context.Context, openID string) (*User, error)
}

// TokenVerifier abstracts the external identity provider's token check.
// Implemented by firebase.Service.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}
