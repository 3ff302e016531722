package session

import (
	"context"
	"net/http"
	"time"

	"holidaze/internal/shared/errs"
	"holidaze/pkg/logger"
)

var ErrTokenExpired = errs.New(http.StatusUnauthorized, "your session has expired, please log in again")

// Holder maps a visitor to at most one signed-in session
type Holder interface {
	// Current returns nil, nil for a visitor who is not signed in
	Current(ctx context.Context, visitorID string) (*UserSession, error)
	Login(ctx context.Context, visitorID string, s UserSession) error
	Logout(ctx context.Context, visitorID string) error
	// Update applies fn to the current session and stores the result
	Update(ctx context.Context, visitorID string, fn func(*UserSession)) (*UserSession, error)
}

type holder struct {
	store  Store
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

func NewHolder(store Store, ttl time.Duration) Holder {
	return &holder{
		store:  store,
		ttl:    ttl,
		logger: logger.GetDefault(),
		now:    time.Now,
	}
}

func (h *holder) Current(ctx context.Context, visitorID string) (*UserSession, error) {
	if visitorID == "" {
		return nil, nil
	}
	return h.store.Get(ctx, visitorID)
}

func (h *holder) Login(ctx context.Context, visitorID string, s UserSession) error {
	if err := h.save(ctx, visitorID, &s); err != nil {
		return err
	}
	h.logger.LogSessionLogin(ctx, visitorID, s.Name)
	return nil
}

func (h *holder) Logout(ctx context.Context, visitorID string) error {
	if visitorID == "" {
		return nil
	}
	if err := h.store.Delete(ctx, visitorID); err != nil {
		return err
	}
	h.logger.LogSessionLogout(ctx, visitorID)
	return nil
}

func (h *holder) Update(ctx context.Context, visitorID string, fn func(*UserSession)) (*UserSession, error) {
	current, err := h.Current(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.ErrNotAuthenticated
	}

	fn(current)

	if err := h.save(ctx, visitorID, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (h *holder) save(ctx context.Context, visitorID string, s *UserSession) error {
	ttl, ok := ttlFor(s.AccessToken, h.ttl, h.now())
	if !ok {
		_ = h.store.Delete(ctx, visitorID)
		return ErrTokenExpired
	}
	return h.store.Set(ctx, visitorID, s, ttl)
}
