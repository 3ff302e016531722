package bookings

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"holidaze/internal/activity"
	"holidaze/internal/availability"
	"holidaze/internal/session"
	"holidaze/internal/shared/constants"
	"holidaze/internal/shared/errs"
	"holidaze/pkg/cache"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"
)

var (
	ErrGuestsOutOfRange = errs.New(http.StatusBadRequest, "guest count must be between 1 and the venue's maximum")
	ErrInvalidDateRange = errs.New(http.StatusBadRequest, "the end date cannot be before the start date")
	ErrOwnVenue         = errs.New(http.StatusForbidden, "you cannot book your own venue")
	ErrDatesUnavailable = errs.New(http.StatusConflict, "some of the selected dates are already booked")
	ErrBookingNotFound  = errs.New(http.StatusNotFound, "booking not found")
	ErrNotOwner         = errs.New(http.StatusForbidden, "only the customer can delete a booking")
)

// VenueSource provides venue data (to avoid a dependency on the venues package)
type VenueSource interface {
	// RefreshVenue reads past any cached copy
	RefreshVenue(ctx context.Context, id string) (*noroff.Venue, error)
	InvalidateVenue(ctx context.Context, id string)
}

type Service interface {
	CreateBooking(ctx context.Context, customer *session.UserSession, req CreateBookingRequest) (*noroff.Booking, error)
	DeleteBooking(ctx context.Context, customer *session.UserSession, id string) error
}

type service struct {
	repo      Repository
	venues    VenueSource
	cache     cache.Service
	publisher activity.Publisher
	location  *time.Location
	logger    *logger.Logger
}

func NewService(repo Repository, venues VenueSource, cacheService cache.Service, publisher activity.Publisher, location *time.Location) Service {
	if location == nil {
		location = time.UTC
	}
	if publisher == nil {
		publisher = activity.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		venues:    venues,
		cache:     cacheService,
		publisher: publisher,
		location:  location,
		logger:    logger.GetDefault(),
	}
}

func (s *service) CreateBooking(ctx context.Context, customer *session.UserSession, req CreateBookingRequest) (*noroff.Booking, error) {
	form, err := s.formFromRequest(req)
	if err != nil {
		return nil, err
	}

	venue, err := s.venues.RefreshVenue(ctx, form.VenueID)
	if err != nil {
		return nil, err
	}

	if venue.OwnerName() == customer.Name {
		return nil, ErrOwnVenue
	}
	if form.Guests < 1 || form.Guests > venue.MaxGuests {
		return nil, ErrGuestsOutOfRange
	}

	taken := availability.Calculate(availability.RangesFromBookings(venue.Bookings, s.location), customer.Name)
	if !taken.IsAvailable(form.DateFrom, form.DateTo) {
		return nil, ErrDatesUnavailable
	}

	booking, err := s.repo.CreateBooking(ctx, customer.AccessToken, form.Payload(s.location))
	if err != nil {
		return nil, err
	}

	s.venues.InvalidateVenue(ctx, venue.ID)
	s.invalidateProfile(ctx, customer.Name)
	s.logger.LogBookingCreated(ctx, booking.ID, venue.ID, customer.Name)
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventBookingCreated, customer.Name, booking.ID).
		With("venue_id", venue.ID).
		With("date_from", form.DateFrom.String()).
		With("date_to", form.DateTo.String()).
		With("guests", fmt.Sprint(form.Guests)))

	return booking, nil
}

func (s *service) formFromRequest(req CreateBookingRequest) (BookingForm, error) {
	from, err := availability.ParseDay(req.DateFrom)
	if err != nil {
		return BookingForm{}, errs.New(http.StatusBadRequest, err.Error())
	}
	to, err := availability.ParseDay(req.DateTo)
	if err != nil {
		return BookingForm{}, errs.New(http.StatusBadRequest, err.Error())
	}
	if from.After(to) {
		return BookingForm{}, ErrInvalidDateRange
	}

	return BookingForm{
		VenueID:  req.VenueID,
		DateFrom: from,
		DateTo:   to,
		Guests:   req.Guests,
	}, nil
}

func (s *service) DeleteBooking(ctx context.Context, customer *session.UserSession, id string) error {
	booking, err := s.repo.GetBooking(ctx, customer.AccessToken, id)
	if err != nil {
		if noroff.IsNotFound(err) {
			return ErrBookingNotFound
		}
		return err
	}

	if booking.CustomerName() != customer.Name {
		return ErrNotOwner
	}

	if err := s.repo.DeleteBooking(ctx, customer.AccessToken, id); err != nil {
		return err
	}

	if booking.Venue != nil {
		s.venues.InvalidateVenue(ctx, booking.Venue.ID)
	}
	s.invalidateProfile(ctx, customer.Name)
	s.logger.LogBookingDeleted(ctx, id, customer.Name)
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventBookingDeleted, customer.Name, id))

	return nil
}

func (s *service) invalidateProfile(ctx context.Context, name string) {
	if err := s.cache.Delete(ctx, constants.BuildProfileBookingsKey(name)); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate profile bookings", err, map[string]interface{}{"name": name})
	}
}
