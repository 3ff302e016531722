package auth

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/pkg/noroff"
)

type Repository interface {
	Register(ctx context.Context, payload RegisterPayload) (*noroff.Profile, error)
	// Login asks for the holidaze fields (venueManager) on the session
	Login(ctx context.Context, creds Credentials) (*noroff.AuthSession, error)
}

type repository struct {
	client *noroff.Client
}

func NewRepository(client *noroff.Client) Repository {
	return &repository{
		client: client,
	}
}

func (r *repository) Register(ctx context.Context, payload RegisterPayload) (*noroff.Profile, error) {
	var env noroff.Envelope[noroff.Profile]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPost,
		Path:   noroff.PathRegister,
		Body:   payload,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *repository) Login(ctx context.Context, creds Credentials) (*noroff.AuthSession, error) {
	q := url.Values{}
	q.Set("_holidaze", "true")

	var env noroff.Envelope[noroff.AuthSession]
	err := r.client.Do(ctx, noroff.Request{
		Method: http.MethodPost,
		Path:   noroff.PathLogin,
		Query:  q,
		Body:   creds,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
