// File: internal/volunteer/handler.go
package volunteer

import (
	"errors"

	"volunteer_hub_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for volunteer handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new volunteer handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for volunteer profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	volunteerGroup := router.Group("/volunteers")
	volunteerGroup.Use(authMW)
	{
		volunteerGroup.GET("/profile", h.getProfile)
		volunteerGroup.POST("/profile", h.createProfile)
	}
}

// getProfile returns the caller's volunteer profile, or a null payload when
// they have none.
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
		common.RespondOK(c, "No volunteer profile exists for this user.", nil)
		return
	}
	common.RespondOK(c, "Volunteer profile retrieved.", ToVolunteerResponse(profile))
}

func (h *Handler) createProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create volunteer profile: invalid request body", zap.Error(err))
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
	common.RespondCreated(c, "Volunteer profile created.", ToVolunteerResponse(profile))
}
