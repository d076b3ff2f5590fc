// File: internal/user/model.go
package user

import (
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/shared"
)

// User represents the user model in the database. One row per external
// identity; created or refreshed on every successful sign-in.
type User struct {
	common.BaseModel
	OpenID       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name         *string   `gorm:"type:text"`
	Email        *string   `gorm:"type:varchar(320)"`
	LoginMethod  *string   `gorm:"type:varchar(64)"`
	Role         string    `gorm:"type:varchar(16);not null;default:'user'"`
	LastSignedIn time.Time `gorm:"not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// UserUpsert is the partial-merge record for sign-in upserts. A nil field is
// "not supplied": it is written on neither the insert nor the update path.
// A non-nil field is written on both.
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// DBToShared converts the GORM user model into the caller identity struct.
func DBToShared(u *User) *shared.User {
	if u == nil {
		return nil
	}
	return &shared.User{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		LastSignedIn: u.LastSignedIn,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
