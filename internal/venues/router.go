package venues

import (
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller, guard inflight.Guard) {
	// Public browsing routes
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.GetCatalog)                       // GET /api/v1/venues?q=&page=&reset=
		venues.GET("/:id", controller.GetVenue)                     // GET /api/v1/venues/:id
		venues.GET("/:id/availability", controller.GetAvailability) // GET /api/v1/venues/:id/availability
	}

	// Venue manager dashboard
	manager := rg.Group("/manager/venues")
	manager.Use(middleware.RequireVenueManager())
	{
		manager.GET("", controller.ListManagedVenues)                                              // GET /api/v1/manager/venues
		manager.POST("", middleware.InFlight(guard, "venue.create"), controller.CreateVenue)       // POST /api/v1/manager/venues
		manager.PUT("/:id", middleware.InFlight(guard, "venue.update"), controller.UpdateVenue)    // PUT /api/v1/manager/venues/:id
		manager.DELETE("/:id", middleware.InFlight(guard, "venue.delete"), controller.DeleteVenue) // DELETE /api/v1/manager/venues/:id
	}
}
