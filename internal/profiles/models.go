package profiles

import (
	"strings"

	"holidaze/internal/session"
	"holidaze/pkg/noroff"
)

type ImageSlot int

const (
	SlotAvatar ImageSlot = iota
	SlotBanner
)

type ImageField int

const (
	ImageURL ImageField = iota
	ImageAlt
)

// ProfileForm is the edit profile form state
type ProfileForm struct {
	Avatar       session.Image
	Banner       session.Image
	Bio          string
	VenueManager bool
}

// FormFromSession seeds the form with what the visitor is signed in as
func FormFromSession(s *session.UserSession) ProfileForm {
	return ProfileForm{
		Avatar:       s.Avatar,
		Banner:       s.Banner,
		Bio:          s.Bio,
		VenueManager: s.VenueManager,
	}
}

func (f *ProfileForm) SetImage(slot ImageSlot, field ImageField, value string) {
	img := &f.Avatar
	if slot == SlotBanner {
		img = &f.Banner
	}
	switch field {
	case ImageURL:
		img.URL = value
	case ImageAlt:
		img.Alt = value
	}
}

func (f *ProfileForm) SetBio(bio string) {
	f.Bio = bio
}

func (f *ProfileForm) SetVenueManager(on bool) {
	f.VenueManager = on
}

// ProfilePayload is the PUT holidaze/profiles/{name} body
type ProfilePayload struct {
	Avatar       *noroff.Media `json:"avatar,omitempty"`
	Banner       *noroff.Media `json:"banner,omitempty"`
	Bio          string        `json:"bio"`
	VenueManager bool          `json:"venueManager"`
}

// Payload leaves out images without a URL, the API rejects them
func (f ProfileForm) Payload() ProfilePayload {
	return ProfilePayload{
		Avatar:       media(f.Avatar),
		Banner:       media(f.Banner),
		Bio:          f.Bio,
		VenueManager: f.VenueManager,
	}
}

// ApplyTo merges the form into the session
func (f ProfileForm) ApplyTo(s *session.UserSession) {
	s.Avatar = f.Avatar
	s.Banner = f.Banner
	s.Bio = f.Bio
	s.VenueManager = f.VenueManager
}

func media(img session.Image) *noroff.Media {
	url := strings.TrimSpace(img.URL)
	if url == "" {
		return nil
	}
	return &noroff.Media{URL: url, Alt: img.Alt}
}
