package auth

import (
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, guard inflight.Guard) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", middleware.InFlight(guard, "auth.register"), controller.Register) // POST /api/v1/auth/register
		auth.POST("/login", middleware.InFlight(guard, "auth.login"), controller.Login)          // POST /api/v1/auth/login
		auth.POST("/logout", controller.Logout)                                                  // POST /api/v1/auth/logout

		auth.GET("/me", middleware.RequireSession(), controller.GetMe) // GET /api/v1/auth/me
	}
}
