package profiles

import (
	"net/http"

	"holidaze/internal/shared/middleware"
	"holidaze/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetProfile(ctx *gin.Context) {
	profile, err := c.service.GetProfile(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		response.RespondError(ctx, "Failed to get profile", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Profile retrieved successfully", profile, nil)
}

func (c *Controller) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	updated, err := c.service.UpdateProfile(ctx.Request.Context(), middleware.VisitorID(ctx), middleware.CurrentSession(ctx), req)
	if err != nil {
		response.RespondError(ctx, "Failed to update profile", err)
		return
	}
	middleware.SetSession(ctx, updated)

	response.RespondJSON(ctx, "success", http.StatusOK, "Profile updated successfully", updated.Public(), nil)
}
