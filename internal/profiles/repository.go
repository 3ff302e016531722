package profiles

import (
	"context"
	"net/http"

	"holidaze/pkg/noroff"
)

type Repository interface {
	// ListBookings expands each booking's venue
	ListBookings(ctx context.Context, token, name string) ([]noroff.Booking, error)
	UpdateProfile(ctx context.Context, token, name string, payload ProfilePayload) (*noroff.Profile, error)
}

type repository struct {
	client *noroff.Client
}

func NewRepository(client *noroff.Client) Repository {
	return &repository{
		client: client,
	}
}

func (r *repository) ListBookings(ctx context.Context, token, name string) ([]noroff.Booking, error) {
	var env noroff.Envelope[[]noroff.Booking]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodGet,
		Path:   noroff.ProfileBookingsPath(name),
		Query:  noroff.Expand("venue"),
		Token:  token,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (r *repository) UpdateProfile(ctx context.Context, token, name string, payload ProfilePayload) (*noroff.Profile, error) {
	var env noroff.Envelope[noroff.Profile]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPut,
		Path:   noroff.ProfilePath(name),
		Token:  token,
		Body:   payload,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
