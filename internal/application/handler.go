// File: internal/application/handler.go
package application

import (
	"errors"

	"volunteer_hub_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for application handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new application handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for application operations. All routes
// require an authenticated caller.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	appGroup := router.Group("/applications")
	appGroup.Use(authMW)
	{
		appGroup.GET("/mine", h.getMine)
		appGroup.GET("/received", h.getReceived)
		appGroup.POST("", h.create)
	}
}

func (h *Handler) getMine(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	apps, err := h.service.GetByCallerVolunteer(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Volunteer applications retrieved.", ToApplicationResponses(apps))
}

func (h *Handler) getReceived(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	apps, err := h.service.GetReceivedByCallerOrganization(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Received applications retrieved.", ToApplicationResponses(apps))
}

func (h *Handler) create(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create application: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	app, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Application submitted.", ToApplicationResponse(app))
}
