package bookings

import (
	"context"
	"net/http"

	"holidaze/pkg/noroff"
)

type Repository interface {
	CreateBooking(ctx context.Context, token string, payload BookingPayload) (*noroff.Booking, error)
	// GetBooking expands the customer and venue
	GetBooking(ctx context.Context, token, id string) (*noroff.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

type repository struct {
	client *noroff.Client
}

func NewRepository(client *noroff.Client) Repository {
	return &repository{client: client}
}

func (r *repository) CreateBooking(ctx context.Context, token string, payload BookingPayload) (*noroff.Booking, error) {
	var env noroff.Envelope[noroff.Booking]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPost,
		Path:   noroff.PathBookings,
		Token:  token,
		Body:   payload,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) GetBooking(ctx context.Context, token, id string) (*noroff.Booking, error) {
	var env noroff.Envelope[noroff.Booking]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodGet,
		Path:   noroff.BookingPath(id),
		Query:  noroff.Expand("customer", "venue"),
		Token:  token,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) DeleteBooking(ctx context.Context, token, id string) error {
	return r.client.Do(ctx, noroff.Request{
		Method: http.MethodDelete,
		Path:   noroff.BookingPath(id),
		Token:  token,
	}, nil)
}
