package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"holidaze/internal/activity"
	"holidaze/internal/session"
	"holidaze/internal/shared/middleware"
	"holidaze/pkg/inflight"
	"holidaze/pkg/noroff"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct{ events []activity.Event }

func (r *recordingPublisher) Publish(_ context.Context, e activity.Event) error {
	r.events = append(r.events, e)
	return nil
}
func (r *recordingPublisher) Close() error { return nil }

// fakeNoroff answers auth/register and auth/login for one known user
func fakeNoroff(t *testing.T, registered *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch r.URL.Path {
		case "/auth/register":
			if registered != nil {
				assert.NoError(t, json.Unmarshal(body, registered))
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"name":"kari","email":"kari@stud.noroff.no","venueManager":true}}`))
		case "/auth/login":
			assert.Equal(t, "true", r.URL.Query().Get("_holidaze"))
			var creds Credentials
			_ = json.Unmarshal(body, &creds)
			if creds.Password != "correct-horse" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid email or password"}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":{"name":"kari","email":"kari@stud.noroff.no","accessToken":"tok","avatar":{"url":"https://img/a.png","alt":"me"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestService(t *testing.T, registered *map[string]any) (Service, session.Holder, *recordingPublisher) {
	srv := fakeNoroff(t, registered)
	t.Cleanup(srv.Close)

	holder := session.NewHolder(session.NewMemoryStore(), time.Hour)
	pub := &recordingPublisher{}
	svc := NewService(NewRepository(noroff.NewClient(noroff.Config{BaseURL: srv.URL})), holder, pub)
	return svc, holder, pub
}

func TestRegisterForm_Payload(t *testing.T) {
	withAvatar, err := json.Marshal(RegisterForm{Name: "kari", AvatarURL: "https://img/a.png", AvatarAlt: "me"}.Payload())
	require.NoError(t, err)
	assert.Contains(t, string(withAvatar), `"avatar":{"url":"https://img/a.png","alt":"me"}`)

	without, err := json.Marshal(RegisterForm{Name: "kari", AvatarAlt: "ignored"}.Payload())
	require.NoError(t, err)
	assert.NotContains(t, string(without), "avatar")
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	valid := RegisterRequest{Name: "kari_n", Email: "kari@stud.noroff.no", Password: "12345678"}
	require.NoError(t, v.Struct(&valid))

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"name with spaces", func(r *RegisterRequest) { r.Name = "kari n" }},
		{"name too long", func(r *RegisterRequest) { r.Name = strings.Repeat("a", 21) }},
		{"foreign email", func(r *RegisterRequest) { r.Email = "kari@gmail.com" }},
		{"short password", func(r *RegisterRequest) { r.Password = "1234567" }},
		{"long bio", func(r *RegisterRequest) { r.Bio = strings.Repeat("b", 181) }},
		{"bad avatar url", func(r *RegisterRequest) { r.AvatarURL = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, v.Struct(&req))
		})
	}

	staff := LoginRequest{Email: "ola.staff@noroff.no", Password: "12345678"}
	assert.NoError(t, v.Struct(&staff))
}

func TestNewValidator_RegistrationErrors(t *testing.T) {
	assert.NotPanics(t, func() { NewValidator() })

	_, err := newValidator(map[string]validator.Func{"": func(validator.FieldLevel) bool { return true }})
	assert.Error(t, err)
}

func TestService_RegisterLogsIn(t *testing.T) {
	var registered map[string]any
	svc, holder, pub := newTestService(t, &registered)
	ctx := context.Background()

	current, err := svc.Register(ctx, "visitor-1", RegisterForm{
		Name: "kari", Email: "kari@stud.noroff.no", Password: "correct-horse", VenueManager: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", current.AccessToken)
	assert.Equal(t, true, registered["venueManager"])
	assert.NotContains(t, registered, "avatar")

	stored, err := holder.Current(ctx, "visitor-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "kari", stored.Name)
	// login without the holidaze flag in the response means not a manager
	assert.False(t, stored.VenueManager)
	assert.Equal(t, "https://img/a.png", stored.Avatar.URL)

	require.Len(t, pub.events, 2)
	assert.Equal(t, activity.EventRegistered, pub.events[0].Type)
	assert.Equal(t, activity.EventSessionLogin, pub.events[1].Type)
}

func TestService_LoginFailure(t *testing.T) {
	svc, holder, pub := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, "visitor-1", Credentials{Email: "kari@stud.noroff.no", Password: "wrong-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, err := holder.Current(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, pub.events)
}

func TestService_Logout(t *testing.T) {
	svc, holder, pub := newTestService(t, nil)
	ctx := context.Background()

	current, err := svc.Login(ctx, "visitor-1", Credentials{Email: "kari@stud.noroff.no", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "visitor-1", current))
	stored, err := holder.Current(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, activity.EventSessionLogout, pub.events[len(pub.events)-1].Type)
}

func setupRouter(svc Service, holder session.Holder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextVisitorID, "visitor-1")
		if current, _ := holder.Current(c.Request.Context(), "visitor-1"); current != nil {
			middleware.SetSession(c, current)
		}
		c.Next()
	})
	SetupAuthRoutes(r.Group("/api/v1"), NewController(svc), inflight.NewMemoryGuard(time.Minute))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestController_LoginMeLogout(t *testing.T) {
	svc, holder, _ := newTestService(t, nil)
	r := setupRouter(svc, holder)

	w := do(r, http.MethodGet, "/api/v1/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"kari@gmail.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"kari@stud.noroff.no","password":"wrong-horse"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"kari@stud.noroff.no","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "accessToken")

	w = do(r, http.MethodGet, "/api/v1/auth/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"kari"`)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
