package profiles

import (
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
)

func SetupProfileRoutes(rg *gin.RouterGroup, controller *Controller, guard inflight.Guard) {
	profile := rg.Group("/profile")
	profile.Use(middleware.RequireSession())
	{
		profile.GET("", controller.GetProfile)                                                  // GET /api/v1/profile
		profile.PUT("", middleware.InFlight(guard, "profile.update"), controller.UpdateProfile) // PUT /api/v1/profile
	}
}
