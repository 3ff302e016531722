package auth

import "holidaze/pkg/noroff"

// RegisterForm is the flat registration form
type RegisterForm struct {
	Name         string
	Email        string
	Password     string
	Bio          string
	AvatarURL    string
	AvatarAlt    string
	VenueManager bool
}

// RegisterPayload is the auth/register body
type RegisterPayload struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	Bio          string        `json:"bio,omitempty"`
	Avatar       *noroff.Media `json:"avatar,omitempty"`
	VenueManager bool          `json:"venueManager"`
}

// Payload nests the avatar, leaving it out when there is no URL
func (f RegisterForm) Payload() RegisterPayload {
	payload := RegisterPayload{
		Name:         f.Name,
		Email:        f.Email,
		Password:     f.Password,
		Bio:          f.Bio,
		VenueManager: f.VenueManager,
	}
	if f.AvatarURL != "" {
		payload.Avatar = &noroff.Media{URL: f.AvatarURL, Alt: f.AvatarAlt}
	}
	return payload
}

// Credentials is the login form
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
