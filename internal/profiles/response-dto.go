package profiles

import (
	"holidaze/internal/session"
	"holidaze/pkg/noroff"
)

// ProfileResponse is the profile page: who is signed in and what they booked
type ProfileResponse struct {
	Profile  session.Public   `json:"profile"`
	Bookings []noroff.Booking `json:"bookings"`
}
