// File: internal/opportunity/model.go
package opportunity

import (
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/organization"
)

// OpportunityStatus represents the lifecycle state of an opportunity.
type OpportunityStatus string

const (
	StatusActive    OpportunityStatus = "active"
	StatusClosed    OpportunityStatus = "closed"
	StatusCompleted OpportunityStatus = "completed"
)

// Opportunity is a volunteering position published by an organization.
type Opportunity struct {
	common.BaseModel
	OrganizationID   uint    `gorm:"not null;index"`
	Title            string  `gorm:"type:varchar(255);not null"`
	Description      string  `gorm:"type:text;not null"`
	Category         *string `gorm:"type:varchar(100)"`
	Location         string  `gorm:"type:varchar(255);not null"`
	StartDate        *time.Time
	EndDate          *time.Time `gorm:"index"`
	VolunteersNeeded *int
	SkillsRequired   *string           `gorm:"type:text"` // serialized JSON list
	Status           OpportunityStatus `gorm:"type:varchar(16);not null;default:'active'"`
	Image            *string           `gorm:"type:varchar(512)"`

	Organization organization.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Opportunity model.
func (Opportunity) TableName() string {
	return "opportunities"
}

// CreateOpportunityRequest is the payload for publishing an opportunity.
type CreateOpportunityRequest struct {
	Title            string     `json:"title" binding:"required,max=255"`
	Description      string     `json:"description" binding:"required"`
	Category         *string    `json:"category" binding:"omitempty,max=100"`
	Location         string     `json:"location" binding:"required,max=255"`
	StartDate        *time.Time `json:"start_date" binding:"omitempty"`
	EndDate          *time.Time `json:"end_date" binding:"omitempty"`
	VolunteersNeeded *int       `json:"volunteers_needed" binding:"omitempty,gt=0"`
	SkillsRequired   []string   `json:"skills_required" binding:"omitempty,dive,max=100"`
	Image            *string    `json:"image" binding:"omitempty,url,max=512"`
}

// OpportunityResponse defines the structure for opportunity data sent in API
// responses.
type OpportunityResponse struct {
	ID               uint       `json:"id"`
	OrganizationID   uint       `json:"organization_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         *string    `json:"category,omitempty"`
	Location         string     `json:"location"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	VolunteersNeeded *int       `json:"volunteers_needed,omitempty"`
	SkillsRequired   []string   `json:"skills_required"`
	Status           string     `json:"status"`
	Image            *string    `json:"image,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToOpportunityResponse converts an Opportunity model to its response DTO.
func ToOpportunityResponse(o *Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:               o.ID,
		OrganizationID:   o.OrganizationID,
		Title:            o.Title,
		Description:      o.Description,
		Category:         o.Category,
		Location:         o.Location,
		StartDate:        o.StartDate,
		EndDate:          o.EndDate,
		VolunteersNeeded: o.VolunteersNeeded,
		SkillsRequired:   common.DecodeStringList(o.SkillsRequired),
		Status:           string(o.Status),
		Image:            o.Image,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToOpportunityResponses converts a slice of models, always producing a
// non-nil slice so empty lists marshal as [] rather than null.
func ToOpportunityResponses(opportunities []Opportunity) []OpportunityResponse {
	responses := make([]OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		responses = append(responses, ToOpportunityResponse(&opportunities[i]))
	}
	return responses
}
