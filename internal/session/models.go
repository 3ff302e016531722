package session

import "holidaze/pkg/noroff"

// Image is an avatar or banner reference
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// UserSession is what the browser is signed in as. The zero value is never stored.
type UserSession struct {
	AccessToken  string `json:"accessToken"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	Avatar       Image  `json:"avatar"`
	Banner       Image  `json:"banner"`
	VenueManager bool   `json:"venueManager"`
}

// FromAuth maps a login response to a session; a missing venueManager flag means false
func FromAuth(auth noroff.AuthSession) UserSession {
	s := UserSession{
		AccessToken: auth.AccessToken,
		Name:        auth.Name,
		Email:       auth.Email,
		Bio:         auth.Bio,
		Avatar:      imageFrom(auth.Avatar),
		Banner:      imageFrom(auth.Banner),
	}
	if auth.VenueManager != nil {
		s.VenueManager = *auth.VenueManager
	}
	return s
}

func imageFrom(m *noroff.Media) Image {
	if m == nil {
		return Image{}
	}
	return Image{URL: m.URL, Alt: m.Alt}
}

// Public is the session without its access token, for responses to the browser
type Public struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	Avatar       Image  `json:"avatar"`
	Banner       Image  `json:"banner"`
	VenueManager bool   `json:"venueManager"`
}

func (s *UserSession) Public() Public {
	return Public{
		Name:         s.Name,
		Email:        s.Email,
		Bio:          s.Bio,
		Avatar:       s.Avatar,
		Banner:       s.Banner,
		VenueManager: s.VenueManager,
	}
}
