package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holidaze/internal/session"
	"holidaze/internal/shared/config"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cookieConfig = config.SessionConfig{CookieName: "holidaze_session"}

func newEngine(holder session.Holder, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(holder, cookieConfig, 3600))
	r.GET("/", append(handlers, func(c *gin.Context) {
		name := ""
		if s := CurrentSession(c); s != nil {
			name = s.Name
		}
		c.JSON(http.StatusOK, gin.H{"visitor": VisitorID(c), "name": name})
	})...)
	return r
}

func get(r *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func visitorCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieConfig.CookieName {
			return c
		}
	}
	t.Fatal("visitor cookie not set")
	return nil
}

func TestLoadSession_IssuesAndKeepsVisitorCookie(t *testing.T) {
	holder := session.NewHolder(session.NewMemoryStore(), time.Hour)
	r := newEngine(holder)

	w := get(r, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := visitorCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)

	w = get(r, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	assert.Equal(t, cookie.Value, visitorCookie(t, w).Value)
	assert.Contains(t, w.Body.String(), cookie.Value)
}

func TestLoadSession_ReplacesForgedCookie(t *testing.T) {
	holder := session.NewHolder(session.NewMemoryStore(), time.Hour)
	w := get(newEngine(holder), &http.Cookie{Name: cookieConfig.CookieName, Value: "../../etc"})
	assert.NotEqual(t, "../../etc", visitorCookie(t, w).Value)
}

func TestLoadSession_LoadsSignedInVisitor(t *testing.T) {
	holder := session.NewHolder(session.NewMemoryStore(), time.Hour)
	visitor := uuid.NewString()
	require.NoError(t, holder.Login(context.Background(), visitor, session.UserSession{Name: "kari", AccessToken: "tok"}))

	w := get(newEngine(holder), &http.Cookie{Name: cookieConfig.CookieName, Value: visitor})
	assert.Contains(t, w.Body.String(), `"name":"kari"`)
}

func TestRequireSessionAndManager(t *testing.T) {
	holder := session.NewHolder(session.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	guest := get(newEngine(holder, RequireSession()), nil)
	assert.Equal(t, http.StatusUnauthorized, guest.Code)

	visitor := uuid.NewString()
	require.NoError(t, holder.Login(ctx, visitor, session.UserSession{Name: "kari", AccessToken: "tok"}))
	cookie := &http.Cookie{Name: cookieConfig.CookieName, Value: visitor}

	assert.Equal(t, http.StatusOK, get(newEngine(holder, RequireSession()), cookie).Code)
	assert.Equal(t, http.StatusForbidden, get(newEngine(holder, RequireVenueManager()), cookie).Code)

	require.NoError(t, holder.Login(ctx, visitor, session.UserSession{Name: "kari", AccessToken: "tok", VenueManager: true}))
	assert.Equal(t, http.StatusOK, get(newEngine(holder, RequireVenueManager()), cookie).Code)
}

type brokenGuard struct{}

func (brokenGuard) Acquire(context.Context, string) (func(), error) {
	return nil, errors.New("redis: connection refused")
}

func TestInFlight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guard := inflight.NewMemoryGuard(time.Minute)

	entered := make(chan struct{})
	finish := make(chan struct{})
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(ContextVisitorID, "visitor-1"); c.Next() })
	r.POST("/slow", InFlight(guard, "booking.create"), func(c *gin.Context) {
		close(entered)
		<-finish
		c.Status(http.StatusCreated)
	})

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/slow", nil))
		close(done)
	}()
	<-entered

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/slow", nil))
	assert.Equal(t, http.StatusConflict, second.Code)

	close(finish)
	<-done
	assert.Equal(t, http.StatusCreated, first.Code)

	// released once the first request finished
	release, err := guard.Acquire(context.Background(), "holidaze:inflight:visitor-1:booking.create")
	require.NoError(t, err)
	release()
}

func TestInFlight_GuardDownPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", InFlight(brokenGuard{}, "auth.login"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
}
