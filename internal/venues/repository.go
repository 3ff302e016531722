package venues

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/pkg/noroff"
)

// Page is one upstream page of venues
type Page struct {
	Venues     []noroff.Venue `json:"venues"`
	IsLastPage bool           `json:"is_last_page"`
}

type Repository interface {
	ListVenues(ctx context.Context, page, limit int) (*Page, error)
	SearchVenues(ctx context.Context, query string, page, limit int) (*Page, error)
	// GetVenue expands owner and bookings
	GetVenue(ctx context.Context, id string) (*noroff.Venue, error)
	ListOwnerVenues(ctx context.Context, token, ownerName string) ([]noroff.Venue, error)
	CreateVenue(ctx context.Context, token string, payload VenuePayload) (*noroff.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, payload VenuePayload) (*noroff.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

type repository struct {
	client    *noroff.Client
	sort      string
	sortOrder string
}

func NewRepository(client *noroff.Client, sort, sortOrder string) Repository {
	return &repository{
		client:    client,
		sort:      sort,
		sortOrder: sortOrder,
	}
}

func (r *repository) ListVenues(ctx context.Context, page, limit int) (*Page, error) {
	return r.fetchPage(ctx, noroff.PathVenues, url.Values{}, page, limit)
}

func (r *repository) SearchVenues(ctx context.Context, query string, page, limit int) (*Page, error) {
	q := url.Values{}
	q.Set("q", query)
	return r.fetchPage(ctx, noroff.PathSearch, q, page, limit)
}

func (r *repository) fetchPage(ctx context.Context, path string, q url.Values, page, limit int) (*Page, error) {
	q.Set("_owner", "true")

	var env noroff.Envelope[[]noroff.Venue]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  noroff.PageQuery(q, page, limit, r.sort, r.sortOrder),
	}, &env)
	if err != nil {
		return nil, err
	}

	return &Page{Venues: env.Data, IsLastPage: env.Meta.IsLastPage}, nil
}

func (r *repository) GetVenue(ctx context.Context, id string) (*noroff.Venue, error) {
	var env noroff.Envelope[noroff.Venue]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodGet,
		Path:   noroff.VenuePath(id),
		Query:  noroff.Expand("owner", "bookings"),
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) ListOwnerVenues(ctx context.Context, token, ownerName string) ([]noroff.Venue, error) {
	var env noroff.Envelope[[]noroff.Venue]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodGet,
		Path:   noroff.ProfileVenuesPath(ownerName),
		Query:  noroff.Expand("bookings"),
		Token:  token,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (r *repository) CreateVenue(ctx context.Context, token string, payload VenuePayload) (*noroff.Venue, error) {
	var env noroff.Envelope[noroff.Venue]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPost,
		Path:   noroff.PathVenues,
		Token:  token,
		Body:   payload,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) UpdateVenue(ctx context.Context, token, id string, payload VenuePayload) (*noroff.Venue, error) {
	var env noroff.Envelope[noroff.Venue]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPut,
		Path:   noroff.VenuePath(id),
		Token:  token,
		Body:   payload,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) DeleteVenue(ctx context.Context, token, id string) error {
	return r.client.Do(ctx, noroff.Request{
		Method: http.MethodDelete,
		Path:   noroff.VenuePath(id),
		Token:  token,
	}, nil)
}
