package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holidaze/api/routes"
	"holidaze/internal/activity"
	"holidaze/internal/shared/config"
	"holidaze/internal/shared/database"
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"
	"holidaze/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		// Check if we're in production/container mode
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		appLogger.WithError(err).Error("Invalid configuration")
		os.Exit(1)
	}

	// Set Gin mode (debug/release); the log format follows it
	gin.SetMode(cfg.GinMode)
	logger.SetDefault(logger.New())
	appLogger = logger.GetDefault()

	// Initialize Redis; without it sessions, caches and guards live in memory
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.WithError(err).Error("Redis unavailable, falling back to in-memory stores")
	}
	defer db.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.GetRedis() != nil {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			AuthRequests:    cfg.RateLimit.AuthRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			ManagerRequests: cfg.RateLimit.ManagerRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Activity publisher
	publisher := newPublisher(cfg, appLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.WithError(err).Error("Error closing activity publisher")
		}
	}()

	client := noroff.NewClient(noroff.Config{
		BaseURL: cfg.Noroff.BaseURL,
		APIKey:  cfg.Noroff.APIKey,
		Timeout: cfg.Noroff.Timeout,
	})

	router := setupRouter(cfg, db, client, publisher, rateLimiter)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("upstream", cfg.Noroff.BaseURL),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("redis", db.GetRedis() != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("activity", cfg.Activity.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Error("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}

	appLogger.Info("Server exited gracefully")
}

// newPublisher connects to Kafka when activity publishing is on. A broker that
// cannot be reached downgrades to the no-op publisher.
func newPublisher(cfg *config.Config, appLogger *logger.Logger) activity.Publisher {
	if !cfg.Activity.Enabled {
		return activity.NoopPublisher{}
	}

	publisher, err := activity.NewKafkaPublisher(activity.DefaultKafkaProducerConfig(cfg.Activity.Brokers, cfg.Activity.Topic))
	if err != nil {
		appLogger.WithError(err).Error("Failed to create Kafka publisher, activity events disabled")
		return activity.NoopPublisher{}
	}

	appLogger.Info("Activity publisher initialized",
		slog.Any("brokers", cfg.Activity.Brokers),
		slog.String("topic", cfg.Activity.Topic),
	)
	return publisher
}

func setupRouter(cfg *config.Config, db *database.DB, client *noroff.Client, publisher activity.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(middleware.RequestID(), RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration; the session cookie needs credentials, so origins are listed
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	appRouter := routes.NewRouter(cfg, db, client, publisher)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.WithRequestID(middleware.RequestIDFrom(c)).WithVisitorID(middleware.VisitorID(c)).LogHTTPRequest(c, duration)
	}
}
