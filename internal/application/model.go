// File: internal/application/model.go
package application

import (
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/volunteer"
)

// ApplicationStatus represents the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
	StatusCompleted ApplicationStatus = "completed"
)

// Application records a volunteer applying to an opportunity.
type Application struct {
	common.BaseModel
	VolunteerID   uint              `gorm:"not null;index"`
	OpportunityID uint              `gorm:"not null;index"`
	Status        ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending'"`
	CoverLetter   *string           `gorm:"type:text"`
	AppliedAt     time.Time         `gorm:"not null"`
	RespondedAt   *time.Time
	CompletedAt   *time.Time

	Volunteer   volunteer.Volunteer     `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Opportunity opportunity.Opportunity `gorm:"foreignKey:OpportunityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Application model.
func (Application) TableName() string {
	return "applications"
}

// CreateApplicationRequest is the payload for applying to an opportunity.
type CreateApplicationRequest struct {
	OpportunityID uint    `json:"opportunity_id" binding:"required,gt=0"`
	CoverLetter   *string `json:"cover_letter" binding:"omitempty"`
}

// ApplicationResponse defines the structure for application data sent in API
// responses.
type ApplicationResponse struct {
	ID            uint       `json:"id"`
	VolunteerID   uint       `json:"volunteer_id"`
	OpportunityID uint       `json:"opportunity_id"`
	Status        string     `json:"status"`
	CoverLetter   *string    `json:"cover_letter,omitempty"`
	AppliedAt     time.Time  `json:"applied_at"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToApplicationResponse converts an Application model to its response DTO.
func ToApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		VolunteerID:   a.VolunteerID,
		OpportunityID: a.OpportunityID,
		Status:        string(a.Status),
		CoverLetter:   a.CoverLetter,
		AppliedAt:     a.AppliedAt,
		RespondedAt:   a.RespondedAt,
		CompletedAt:   a.CompletedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToApplicationResponses converts a slice of models, always producing a
// non-nil slice so empty lists marshal as [] rather than null.
func ToApplicationResponses(applications []Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, ToApplicationResponse(&applications[i]))
	}
	return responses
}
