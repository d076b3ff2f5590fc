// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"volunteer_hub_backend/internal/application"
	"volunteer_hub_backend/internal/auth"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/jobs"
	"volunteer_hub_backend/internal/middleware"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/volunteer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	opportunityExpiryJob *jobs.OpportunityExpiryJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handle *database.Handle,
	authenticator *middleware.Authenticator,
	authHandler *auth.Handler,
	volunteerHandler *volunteer.Handler,
	organizationHandler *organization.Handler,
	opportunityHandler *opportunity.Handler,
	applicationHandler *application.Handler,
	opportunityExpiryJob *jobs.OpportunityExpiryJob,
) (*Server, error) {
	if db, ok := handle.DB(); ok {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to run schema migration: %w", err)
		}
	} else {
		logger.Warn("Database not available, running in degraded mode: writes will be rejected and reads return empty results.")
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := authenticator.Authenticate()
	optionalAuthMW := authenticator.AuthenticateOptional()

	// The health endpoint reports degraded rather than failing when the
	// database never came up; the read surface still works in that state.
	router.GET("/health", func(c *gin.Context) {
		status := "UP"
		if !handle.Connected() {
			status = "DEGRADED"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "message": "Volunteer Hub API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1, optionalAuthMW)
	volunteerHandler.RegisterRoutes(v1, authMW)
	organizationHandler.RegisterRoutes(v1, authMW)
	opportunityHandler.RegisterRoutes(v1, authMW)
	applicationHandler.RegisterRoutes(v1, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:           httpServer,
		router:               router,
		cfg:                  cfg,
		logger:               logger,
		opportunityExpiryJob: opportunityExpiryJob,
	}, nil
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	if s.opportunityExpiryJob != nil {
		if err := s.opportunityExpiryJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start opportunity expiry job", zap.Error(err))
		}
	} else {
		s.logger.Info("Opportunity expiry job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.opportunityExpiryJob != nil {
		s.opportunityExpiryJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
