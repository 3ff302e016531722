package bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"holidaze/internal/session"
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(svc Service, current *session.UserSession, guard inflight.Guard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextVisitorID, "visitor-1")
		if current != nil {
			middleware.SetSession(c, current)
		}
		c.Next()
	})
	SetupBookingRoutes(r.Group("/api/v1"), NewController(svc), guard)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestController_CreateBooking(t *testing.T) {
	_, _, _, svc := fixture()
	guard := inflight.NewMemoryGuard(time.Minute)

	w := post(setupRouter(svc, nil, guard), `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r := setupRouter(svc, kari, guard)

	w = post(r, `{"venueId":"v-1","dateFrom":"2024-06-01","dateTo":"2024-06-02","guests":1}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = post(r, `{"venueId":"v-1","dateFrom":"2024-06-11","dateTo":"2024-06-11","guests":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = post(r, `{"venueId":"v-1","dateFrom":"June 1","dateTo":"2024-06-02","guests":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, `{"venueId":"v-1","dateFrom":"2024-06-01","dateTo":"2024-06-02","guests":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_DoubleSubmitIsRejected(t *testing.T) {
	_, _, _, svc := fixture()
	guard := inflight.NewMemoryGuard(time.Minute)

	// the first submit is still holding the lease
	release, err := guard.Acquire(context.Background(), "holidaze:inflight:visitor-1:booking.create")
	assert.NoError(t, err)
	defer release()

	w := post(setupRouter(svc, kari, guard), `{"venueId":"v-1","dateFrom":"2024-06-01","dateTo":"2024-06-02","guests":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "still in progress")
}
