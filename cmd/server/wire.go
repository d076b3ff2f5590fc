// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"volunteer_hub_backend/internal/app"
	"volunteer_hub_backend/internal/application"
	"volunteer_hub_backend/internal/auth"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/firebase"
	"volunteer_hub_backend/internal/jobs"
	"volunteer_hub_backend/internal/middleware"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/platform/logger"
	"volunteer_hub_backend/internal/shared"
	"volunteer_hub_backend/internal/user"
	"volunteer_hub_backend/internal/volunteer"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewHandle,

		// Identity
		firebase.NewService,
		wire.Bind(new(shared.TokenVerifier), new(*firebase.Service)),
		provideBlocklist,
		wire.Bind(new(auth.TokenBlocklistService), new(*auth.InMemoryBlocklistService)),
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),
		middleware.NewAuthenticator,
		auth.NewHandler,

		// Domain Modules
		volunteer.NewGORMRepository,
		volunteer.NewService,
		wire.Bind(new(volunteer.Service), new(*volunteer.ServiceImplementation)),
		volunteer.NewHandler,
		organization.NewGORMRepository,
		organization.NewService,
		wire.Bind(new(organization.Service), new(*organization.ServiceImplementation)),
		organization.NewHandler,
		opportunity.NewGORMRepository,
		opportunity.NewService,
		wire.Bind(new(opportunity.Service), new(*opportunity.ServiceImplementation)),
		opportunity.NewHandler,
		application.NewGORMRepository,
		application.NewService,
		wire.Bind(new(application.Service), new(*application.ServiceImplementation)),
		application.NewHandler,
		jobs.NewOpportunityExpiryJob,

		// Application Layer
		app.NewServer,
		provideCleanup,
	)
	return nil, nil, nil
}
