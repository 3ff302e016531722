package profiles

import (
	"context"
	"strconv"

	"holidaze/internal/activity"
	"holidaze/internal/session"
	"holidaze/internal/shared/constants"
	"holidaze/pkg/cache"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"
)

type Service interface {
	GetProfile(ctx context.Context, current *session.UserSession) (*ProfileResponse, error)
	// UpdateProfile saves upstream first and only then changes the session
	UpdateProfile(ctx context.Context, visitorID string, current *session.UserSession, req UpdateProfileRequest) (*session.UserSession, error)
}

type service struct {
	repo      Repository
	holder    session.Holder
	cache     cache.Service
	publisher activity.Publisher
	logger    *logger.Logger
}

func NewService(repo Repository, holder session.Holder, cacheService cache.Service, publisher activity.Publisher) Service {
	if publisher == nil {
		publisher = activity.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		holder:    holder,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger.GetDefault(),
	}
}

func (s *service) GetProfile(ctx context.Context, current *session.UserSession) (*ProfileResponse, error) {
	var bookings []noroff.Booking
	err := s.cache.GetOrSet(ctx, constants.BuildProfileBookingsKey(current.Name), constants.TTL_PROFILE_BOOKINGS, func() (interface{}, error) {
		return s.repo.ListBookings(ctx, current.AccessToken, current.Name)
	}, &bookings)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []noroff.Booking{}
	}

	return &ProfileResponse{
		Profile:  current.Public(),
		Bookings: bookings,
	}, nil
}

func (s *service) UpdateProfile(ctx context.Context, visitorID string, current *session.UserSession, req UpdateProfileRequest) (*session.UserSession, error) {
	form := FormFromSession(current)
	req.Apply(&form)

	if _, err := s.repo.UpdateProfile(ctx, current.AccessToken, current.Name, form.Payload()); err != nil {
		return nil, err
	}

	updated, err := s.holder.Update(ctx, visitorID, form.ApplyTo)
	if err != nil {
		return nil, err
	}

	if current.VenueManager != updated.VenueManager {
		if err := s.cache.Delete(ctx, constants.BuildOwnerVenuesKey(current.Name)); err != nil {
			s.logger.ErrorWithContext(ctx, "Failed to invalidate owner venues", err, map[string]interface{}{"name": current.Name})
		}
	}

	s.logger.InfoWithContext(ctx, "Profile updated", map[string]interface{}{
		"name":          updated.Name,
		"venue_manager": updated.VenueManager,
	})
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventProfileUpdated, updated.Name, updated.Name).
		With("venue_manager", strconv.FormatBool(updated.VenueManager)))

	return updated, nil
}
