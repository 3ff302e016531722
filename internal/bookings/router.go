package bookings

import (
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, guard inflight.Guard) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.RequireSession())
	{
		bookings.POST("", middleware.InFlight(guard, "booking.create"), controller.CreateBooking)       // POST /api/v1/bookings
		bookings.DELETE("/:id", middleware.InFlight(guard, "booking.delete"), controller.DeleteBooking) // DELETE /api/v1/bookings/:id
	}
}
