// File: internal/app/migrate.go
package app

import (
	"volunteer_hub_backend/internal/application"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/user"
	"volunteer_hub_backend/internal/volunteer"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. Order follows
// the foreign key dependencies.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&volunteer.Volunteer{},
		&organization.Organization{},
		&opportunity.Opportunity{},
		&application.Application{},
	)
}
