package venues

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"holidaze/internal/session"
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"
	"holidaze/pkg/noroff"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     interface{}     `json:"errors"`
}

func setupRouter(repo Repository, current *session.UserSession) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextVisitorID, "visitor-1")
		if current != nil {
			middleware.SetSession(c, current)
		}
		c.Next()
	})

	controller := NewController(newTestService(repo, nil))
	SetupVenueRoutes(r.Group("/api/v1"), controller, inflight.NewMemoryGuard(time.Minute))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestController_GetCatalog(t *testing.T) {
	repo := newFakeRepository()
	repo.pages["beach"] = []Page{{Venues: []noroff.Venue{
		{
			ID:          "a",
			Name:        "Beach hut",
			Description: "Cozy",
			Media:       []noroff.Media{{URL: "https://img/a.jpg"}, {URL: "https://img/b.jpg"}},
			Meta:        noroff.Amenities{Wifi: true, Pets: true},
			Location:    noroff.Location{Address: "Road 1", City: "Bergen"},
		},
	}, IsLastPage: true}}
	r := setupRouter(repo, nil)

	w, env := do(t, r, http.MethodGet, "/api/v1/venues?q=beach", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)

	var catalog CatalogResponse
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	assert.Equal(t, "beach", catalog.Query)
	assert.False(t, catalog.HasMore)
	require.Len(t, catalog.Venues, 1)
	card := catalog.Venues[0]
	assert.Equal(t, "https://img/a.jpg", card.Media.URL)
	assert.Equal(t, "Cozy", card.Description)
	assert.Equal(t, "Road 1", card.Address)
	assert.Equal(t, "Bergen", card.City)
	assert.Equal(t, noroff.Amenities{Wifi: true, Pets: true}, card.Meta)

	w, _ = do(t, r, http.MethodGet, "/api/v1/venues?page=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_GetVenueNotFound(t *testing.T) {
	r := setupRouter(newFakeRepository(), nil)

	w, env := do(t, r, http.MethodGet, "/api/v1/venues/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "venue not found", env.Errors)
}

func TestController_Availability(t *testing.T) {
	repo := newFakeRepository()
	repo.venues["v-1"] = noroff.Venue{ID: "v-1"}
	r := setupRouter(repo, nil)

	w, env := do(t, r, http.MethodGet, "/api/v1/venues/v-1/availability?from=2024-02-10&months=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view AvailabilityView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Len(t, view.Calendar, 29)

	w, _ = do(t, r, http.MethodGet, "/api/v1/venues/v-1/availability?from=10-02-2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_ManagerGuards(t *testing.T) {
	w, _ := do(t, setupRouter(newFakeRepository(), nil), http.MethodGet, "/api/v1/manager/venues", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customer := &session.UserSession{Name: "guest"}
	w, _ = do(t, setupRouter(newFakeRepository(), customer), http.MethodGet, "/api/v1/manager/venues", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestController_CreateVenue(t *testing.T) {
	repo := newFakeRepository()
	manager := &session.UserSession{Name: "kari", VenueManager: true}
	r := setupRouter(repo, manager)

	w, env := do(t, r, http.MethodPost, "/api/v1/manager/venues", `{
		"name": "Cabin",
		"description": "Quiet",
		"price": 450,
		"maxGuests": 3,
		"media": [{"url": "https://img/c.jpg", "alt": "Cabin"}],
		"meta": {"wifi": true},
		"location": {"city": "Tromsø", "lat": 69.6}
	}`)
	require.Equal(t, http.StatusCreated, w.Code, env.Errors)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Tromsø", repo.created.Location.City)
	assert.True(t, repo.created.Meta.Wifi)

	w, _ = do(t, r, http.MethodPost, "/api/v1/manager/venues", `{"name": "No guests", "description": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/manager/venues", `{"name": "Bad", "description": "x", "maxGuests": 1, "rating": 7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_UpdateForeignVenue(t *testing.T) {
	repo := newFakeRepository()
	repo.venues["theirs"] = noroff.Venue{ID: "theirs", Owner: &noroff.Profile{Name: "ola"}}
	r := setupRouter(repo, &session.UserSession{Name: "kari", VenueManager: true})

	w, _ := do(t, r, http.MethodPut, "/api/v1/manager/venues/theirs", `{"name": "Mine now"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, repo.updated)
}
