// File: internal/volunteer/model.go
package volunteer

import (
	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/user"
)

// Volunteer holds the volunteer-side profile of a user. At most one row per
// user, enforced by the unique index on user_id.
type Volunteer struct {
	common.BaseModel
	UserID       uint    `gorm:"not null;uniqueIndex"`
	Bio          *string `gorm:"type:text"`
	Skills       *string `gorm:"type:text"` // serialized JSON list
	Availability *string `gorm:"type:varchar(255)"`
	Phone        *string `gorm:"type:varchar(20)"`
	Location     *string `gorm:"type:varchar(255)"`
	ProfileImage *string `gorm:"type:varchar(512)"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Volunteer model.
func (Volunteer) TableName() string {
	return "volunteers"
}

// CreateProfileRequest is the payload for creating a volunteer profile.
// Every field is optional; an empty profile is a valid profile.
type CreateProfileRequest struct {
	Bio          *string  `json:"bio" binding:"omitempty"`
	Skills       []string `json:"skills" binding:"omitempty,dive,max=100"`
	Availability *string  `json:"availability" binding:"omitempty,max=255"`
	Phone        *string  `json:"phone" binding:"omitempty,max=20"`
	Location     *string  `json:"location" binding:"omitempty,max=255"`
	ProfileImage *string  `json:"profile_image" binding:"omitempty,url,max=512"`
}

// VolunteerResponse defines the structure for volunteer profile data sent in
// API responses.
type VolunteerResponse struct {
	ID           uint     `json:"id"`
	UserID       uint     `json:"user_id"`
	Bio          *string  `json:"bio,omitempty"`
	Skills       []string `json:"skills"`
	Availability *string  `json:"availability,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Location     *string  `json:"location,omitempty"`
	ProfileImage *string  `json:"profile_image,omitempty"`
}

// ToVolunteerResponse converts a Volunteer model to its response DTO.
func ToVolunteerResponse(v *Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Bio:          v.Bio,
		Skills:       common.DecodeStringList(v.Skills),
		Availability: v.Availability,
		Phone:        v.Phone,
		Location:     v.Location,
		ProfileImage: v.ProfileImage,
	}
}
