// File: internal/organization/model.go
package organization

import (
	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/user"
)

// Organization holds the organization-side profile of a user. At most one row
// per user, enforced by the unique index on user_id.
type Organization struct {
	common.BaseModel
	UserID      uint    `gorm:"not null;uniqueIndex"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Website     *string `gorm:"type:varchar(512)"`
	Phone       *string `gorm:"type:varchar(20)"`
	Location    *string `gorm:"type:varchar(255)"`
	Logo        *string `gorm:"type:varchar(512)"`
	Verified    bool    `gorm:"not null;default:false"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Organization model.
func (Organization) TableName() string {
	return "organizations"
}

// CreateProfileRequest is the payload for creating an organization profile.
// Name is the only required field.
type CreateProfileRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty"`
	Website     *string `json:"website" binding:"omitempty,url,max=512"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	Logo        *string `json:"logo" binding:"omitempty,url,max=512"`
}

// OrganizationResponse defines the structure for organization profile data
// sent in API responses.
type OrganizationResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Location    *string `json:"location,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Verified    bool    `json:"verified"`
}

// ToOrganizationResponse converts an Organization model to its response DTO.
func ToOrganizationResponse(o *Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Name:        o.Name,
		Description: o.Description,
		Website:     o.Website,
		Phone:       o.Phone,
		Location:    o.Location,
		Logo:        o.Logo,
		Verified:    o.Verified,
	}
}
