package auth

import (
	"net/http"

	"holidaze/internal/shared/middleware"
	"holidaze/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: NewValidator(),
	}
}

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	current, err := c.service.Register(ctx.Request.Context(), middleware.VisitorID(ctx), req.Form())
	if err != nil {
		response.RespondError(ctx, "Failed to register", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Registered successfully", current.Public(), nil)
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	current, err := c.service.Login(ctx.Request.Context(), middleware.VisitorID(ctx), req.Credentials())
	if err != nil {
		response.RespondError(ctx, "Failed to login", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", current.Public(), nil)
}

func (c *Controller) Logout(ctx *gin.Context) {
	if err := c.service.Logout(ctx.Request.Context(), middleware.VisitorID(ctx), middleware.CurrentSession(ctx)); err != nil {
		response.RespondError(ctx, "Failed to logout", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Logged out successfully", nil, nil)
}

func (c *Controller) GetMe(ctx *gin.Context) {
	current := middleware.CurrentSession(ctx)
	response.RespondJSON(ctx, "success", http.StatusOK, "User data retrieved successfully", current.Public(), nil)
}
