package middleware

import (
	"errors"
	"net/http"

	"holidaze/internal/session"
	"holidaze/internal/shared/config"
	"holidaze/internal/shared/constants"
	"holidaze/internal/shared/errs"
	"holidaze/internal/shared/utils/response"
	"holidaze/pkg/inflight"
	"holidaze/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextVisitorID = "visitor_id"
	ContextSession   = "session"
	ContextRequestID = "request_id"

	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, reusing the caller's when it sends one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// LoadSession binds the visitor cookie to a visitor id and loads that visitor's session, if any.
// A visitor without a cookie gets a new id.
func LoadSession(holder session.Holder, cfg config.SessionConfig, ttlSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(cfg.CookieName)
		if _, perr := uuid.Parse(visitorID); err != nil || perr != nil {
			visitorID = uuid.NewString()
		}
		// refreshed on every request
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, visitorID, ttlSeconds, "/", cfg.CookieDomain, cfg.CookieSecure, true)
		c.Set(ContextVisitorID, visitorID)

		current, err := holder.Current(c.Request.Context(), visitorID)
		if err != nil {
			logger.GetDefault().ErrorWithContext(c.Request.Context(), "failed to load session", err, map[string]interface{}{
				"visitor_id": visitorID,
			})
		}
		if current != nil {
			c.Set(ContextSession, current)
		}

		c.Next()
	}
}

// RequireSession rejects visitors who are not signed in
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			response.RespondError(c, "Authentication required", errs.ErrNotAuthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireVenueManager rejects sessions without the venue manager flag
func RequireVenueManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		current := CurrentSession(c)
		if current == nil {
			response.RespondError(c, "Authentication required", errs.ErrNotAuthenticated)
			c.Abort()
			return
		}
		if !current.VenueManager {
			response.RespondError(c, "Insufficient permissions", errs.ErrNotVenueManager)
			c.Abort()
			return
		}
		c.Next()
	}
}

// InFlight lets one request per visitor and action through at a time; the rest get 409
func InFlight(guard inflight.Guard, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := constants.BuildInFlightKey(VisitorID(c), action)

		release, err := guard.Acquire(c.Request.Context(), key)
		if errors.Is(err, inflight.ErrInFlight) {
			response.RespondError(c, "Request already in progress", errs.ErrRequestInFlight)
			c.Abort()
			return
		}
		if err != nil {
			// guard backend down: let the request through
			logger.GetDefault().ErrorWithContext(c.Request.Context(), "in-flight guard unavailable", err, map[string]interface{}{
				"action": action,
			})
			c.Next()
			return
		}
		defer release()

		c.Next()
	}
}

// VisitorID returns the id set by LoadSession
func VisitorID(c *gin.Context) string {
	return c.GetString(ContextVisitorID)
}

// CurrentSession returns nil when the visitor is not signed in
func CurrentSession(c *gin.Context) *session.UserSession {
	value, exists := c.Get(ContextSession)
	if !exists {
		return nil
	}
	current, _ := value.(*session.UserSession)
	return current
}

// SetSession replaces the session seen by the rest of this request
func SetSession(c *gin.Context, s *session.UserSession) {
	c.Set(ContextSession, s)
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
