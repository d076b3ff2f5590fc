// File: internal/organization/handler.go
package organization

import (
	"errors"

	"volunteer_hub_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for organization handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new organization handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for organization profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	orgGroup := router.Group("/organizations")
	orgGroup.Use(authMW)
	{
		orgGroup.GET("/profile", h.getProfile)
		orgGroup.POST("/profile", h.createProfile)
	}
}

// getProfile returns the caller's organization profile, or a null payload
// when they have none.
func (h *Handler) getProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if profile == nil {
		common.RespondOK(c, "No organization profile exists for this user.", nil)
		return
	}
	common.RespondOK(c, "Organization profile retrieved.", ToOrganizationResponse(profile))
}

func (h *Handler) createProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create organization profile: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Organization profile created.", ToOrganizationResponse(profile))
}
