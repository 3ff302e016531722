package bookings

import (
	"time"

	"holidaze/internal/availability"
)

// BookingForm is the booking widget's state: a date range, guest count and venue
type BookingForm struct {
	VenueID  string
	DateFrom availability.Day
	DateTo   availability.Day
	Guests   int
}

// BookingPayload is the holidaze/bookings create body
type BookingPayload struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}

// Payload sends both dates as UTC instants of local midnight
func (f BookingForm) Payload(loc *time.Location) BookingPayload {
	return BookingPayload{
		DateFrom: f.DateFrom.Midnight(loc).UTC(),
		DateTo:   f.DateTo.Midnight(loc).UTC(),
		Guests:   f.Guests,
		VenueID:  f.VenueID,
	}
}
