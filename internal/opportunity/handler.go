// File: internal/opportunity/handler.go
package opportunity

import (
	"errors"
	"strconv"

	"volunteer_hub_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for opportunity handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new opportunity handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for opportunity operations. Listing and
// lookup are public; publishing and the caller's own list require auth. The
// static /mine segment takes priority over the :id parameter.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	oppGroup := router.Group("/opportunities")
	{
		oppGroup.GET("", h.listActive)
		oppGroup.GET("/mine", authMW, h.getMine)
		oppGroup.GET("/:id", h.getByID)
		oppGroup.POST("", authMW, h.create)
	}
}

func (h *Handler) listActive(c *gin.Context) {
	opps, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Active opportunities retrieved.", ToOpportunityResponses(opps))
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Opportunity ID must be a positive integer."))
		return
	}

	opp, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Opportunity retrieved.", ToOpportunityResponse(opp))
}

func (h *Handler) getMine(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	opps, err := h.service.GetByCallerOrganization(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Organization opportunities retrieved.", ToOpportunityResponses(opps))
}

func (h *Handler) create(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authenticated user required."))
		return
	}

	var req CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create opportunity: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	opp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Opportunity created.", ToOpportunityResponse(opp))
}
