package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // calendar timezones in slim containers
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	AllowedOrigins []string

	// Upstream Noroff API
	Noroff NoroffConfig

	// Redis configuration
	Redis RedisConfig

	// Browser session cookie
	Session SessionConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Venue catalog paging
	Catalog CatalogConfig

	// Booking calendar
	Calendar CalendarConfig

	// Activity events
	Activity ActivityConfig

	// Logging
	LogLevel string
}

// NoroffConfig holds the upstream REST API settings
type NoroffConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL values for different operations
	SessionTTL  time.Duration
	CacheTTL    time.Duration
	InFlightTTL time.Duration
}

// SessionConfig holds the visitor cookie settings
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	CookieDomain string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	PublicRequests  int           `json:"public_requests"`
	AuthRequests    int           `json:"auth_requests"`
	BookingRequests int           `json:"booking_requests"`
	ManagerRequests int           `json:"manager_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// CatalogConfig holds venue listing defaults
type CatalogConfig struct {
	PageSize  int
	Sort      string
	SortOrder string
}

// CalendarConfig holds the booking calendar settings
type CalendarConfig struct {
	Timezone string
	Months   int
}

// ActivityConfig holds the Kafka activity publisher settings
type ActivityConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB
		AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		Noroff: NoroffConfig{
			BaseURL: getEnv("NOROFF_BASE_URL", "https://v2.api.noroff.dev/"),
			APIKey:  getEnv("NOROFF_API_KEY", ""),
			Timeout: getDurationEnv("NOROFF_TIMEOUT", 10*time.Second),
		},

		// Redis configuration
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			// TTL configurations with defaults
			SessionTTL:  getDurationEnv("REDIS_SESSION_TTL", 24*time.Hour),
			CacheTTL:    getDurationEnv("REDIS_CACHE_TTL", 5*time.Minute),
			InFlightTTL: getDurationEnv("INFLIGHT_TTL", 30*time.Second),
		},

		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "holidaze_session"),
			CookieSecure: getBoolEnv("SESSION_COOKIE_SECURE", false),
			CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:  getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 120),
			AuthRequests:    getIntEnv("RATE_LIMIT_AUTH_REQUESTS", 10),
			BookingRequests: getIntEnv("RATE_LIMIT_BOOKING_REQUESTS", 20),
			ManagerRequests: getIntEnv("RATE_LIMIT_MANAGER_REQUESTS", 30),
			HealthRequests:  getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 300),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		Catalog: CatalogConfig{
			PageSize:  getIntEnv("CATALOG_PAGE_SIZE", 20),
			Sort:      getEnv("CATALOG_SORT", "created"),
			SortOrder: getEnv("CATALOG_SORT_ORDER", "desc"),
		},

		Calendar: CalendarConfig{
			Timezone: getEnv("CALENDAR_TIMEZONE", "UTC"),
			Months:   getIntEnv("CALENDAR_MONTHS", 2),
		},

		Activity: ActivityConfig{
			Enabled: getBoolEnv("ACTIVITY_ENABLED", false),
			Brokers: getStringSliceEnv("ACTIVITY_KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("ACTIVITY_KAFKA_TOPIC", "holidaze-activity"),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// Validate reports settings the service cannot run without
func (c *Config) Validate() error {
	var problems []error

	if c.Noroff.APIKey == "" {
		problems = append(problems, errors.New("NOROFF_API_KEY is required"))
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		problems = append(problems, fmt.Errorf("CALENDAR_TIMEZONE %q: %w", c.Calendar.Timezone, err))
	}
	if c.Catalog.PageSize <= 0 {
		problems = append(problems, errors.New("CATALOG_PAGE_SIZE must be positive"))
	}

	return errors.Join(problems...)
}

// CalendarLocation returns the calendar's location, UTC when it cannot be loaded
func (c *Config) CalendarLocation() *time.Location {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
