package auth

import (
	"context"
	"errors"
	"net/http"

	"holidaze/internal/activity"
	"holidaze/internal/session"
	"holidaze/internal/shared/errs"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"
)

var (
	ErrInvalidCredentials = errs.New(http.StatusUnauthorized, "invalid email or password")
	ErrMissingToken       = errs.New(http.StatusBadGateway, "login response did not include an access token")
)

type Service interface {
	// Register creates the profile and then signs in with the same credentials
	Register(ctx context.Context, visitorID string, form RegisterForm) (*session.UserSession, error)
	Login(ctx context.Context, visitorID string, creds Credentials) (*session.UserSession, error)
	Logout(ctx context.Context, visitorID string, current *session.UserSession) error
}

type service struct {
	repo      Repository
	holder    session.Holder
	publisher activity.Publisher
	logger    *logger.Logger
}

func NewService(repo Repository, holder session.Holder, publisher activity.Publisher) Service {
	if publisher == nil {
		publisher = activity.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		holder:    holder,
		publisher: publisher,
		logger:    logger.GetDefault(),
	}
}

func (s *service) Register(ctx context.Context, visitorID string, form RegisterForm) (*session.UserSession, error) {
	profile, err := s.repo.Register(ctx, form.Payload())
	if err != nil {
		return nil, err
	}

	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventRegistered, profile.Name, profile.Name).
		With("venue_manager", boolString(profile.VenueManager)))

	return s.Login(ctx, visitorID, Credentials{Email: form.Email, Password: form.Password})
}

func (s *service) Login(ctx context.Context, visitorID string, creds Credentials) (*session.UserSession, error) {
	auth, err := s.repo.Login(ctx, creds)
	if err != nil {
		var apiErr *noroff.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			s.logger.LogAuthFailure(ctx, "invalid credentials", "")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if auth.AccessToken == "" {
		return nil, ErrMissingToken
	}

	current := session.FromAuth(*auth)
	if err := s.holder.Login(ctx, visitorID, current); err != nil {
		return nil, err
	}

	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventSessionLogin, current.Name, visitorID))
	return &current, nil
}

func (s *service) Logout(ctx context.Context, visitorID string, current *session.UserSession) error {
	if err := s.holder.Logout(ctx, visitorID); err != nil {
		return err
	}
	if current != nil {
		activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventSessionLogout, current.Name, visitorID))
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
