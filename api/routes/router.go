// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"holidaze/internal/activity"
	"holidaze/internal/auth"
	"holidaze/internal/bookings"
	"holidaze/internal/profiles"
	"holidaze/internal/session"
	"holidaze/internal/shared/config"
	"holidaze/internal/shared/database"
	"holidaze/internal/shared/middleware"
	"holidaze/internal/venues"
	"holidaze/pkg/cache"
	"holidaze/pkg/inflight"
	"holidaze/pkg/noroff"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	client    *noroff.Client
	cache     cache.Service
	holder    session.Holder
	guard     inflight.Guard
	publisher activity.Publisher

	venueService venues.Service // For dependency injection
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, client *noroff.Client, publisher activity.Publisher) *Router {
	if publisher == nil {
		publisher = activity.NoopPublisher{}
	}
	return &Router{
		config:    cfg,
		db:        db,
		client:    client,
		cache:     cache.NewService(db.GetRedis()),
		holder:    session.NewHolder(session.NewStore(db.GetRedis()), cfg.Redis.SessionTTL),
		guard:     inflight.NewGuard(db.GetRedis(), cfg.Redis.InFlightTTL),
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.LoadSession(r.holder, r.config.Session, int(r.config.Redis.SessionTTL.Seconds())))
	{
		r.setupAuthRoutes(api)

		// Venue routes must be set up before booking routes for dependency injection
		r.setupVenueRoutes(api)
		r.setupBookingRoutes(api)

		r.setupProfileRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "holidaze-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "holidaze-backend",
			"redis":     r.db.GetRedis() != nil,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures registration, login and logout
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.client)
	authService := auth.NewService(authRepo, r.holder, r.publisher)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController, r.guard)
}

// setupVenueRoutes configures browsing and the venue manager dashboard
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.client, r.config.Catalog.Sort, r.config.Catalog.SortOrder)
	catalogs := venues.NewCatalogStore(r.db.GetRedis(), r.config.Redis.SessionTTL)
	venueService := venues.NewService(venueRepo, catalogs, r.cache, r.publisher, venues.Options{
		PageSize:       r.config.Catalog.PageSize,
		CalendarMonths: r.config.Calendar.Months,
		Location:       r.config.CalendarLocation(),
	})
	venueController := venues.NewController(venueService)

	// Store venue service for dependency injection
	r.venueService = venueService

	venues.SetupVenueRoutes(rg, venueController, r.guard)
}

// setupBookingRoutes configures booking creation and deletion
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.client)
	bookingService := bookings.NewService(bookingRepo, r.venueService, r.cache, r.publisher, r.config.CalendarLocation())
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController, r.guard)
}

// setupProfileRoutes configures the signed-in visitor's profile page
func (r *Router) setupProfileRoutes(rg *gin.RouterGroup) {
	profileRepo := profiles.NewRepository(r.client)
	profileService := profiles.NewService(profileRepo, r.holder, r.cache, r.publisher)
	profileController := profiles.NewController(profileService)

	profiles.SetupProfileRoutes(rg, profileController, r.guard)
}
