package venues

import (
	"holidaze/internal/availability"
	"holidaze/pkg/noroff"
)

// LoadRequest asks for one more page of the visitor's catalog
type LoadRequest struct {
	Query string
	// Page 0 means the catalog's next page
	Page  int
	Reset bool
}

// VenueDetail is a venue plus whether the viewer may book it
type VenueDetail struct {
	Venue   noroff.Venue `json:"venue"`
	CanBook bool         `json:"can_book"`
}

// AvailabilityView is the booking calendar for one venue
type AvailabilityView struct {
	VenueID     string              `json:"venue_id"`
	MaxGuests   int                 `json:"max_guests"`
	Window      availability.Window `json:"window"`
	Unavailable []availability.Day  `json:"unavailable"`
	Mine        []availability.Day  `json:"mine"`
	Calendar    []availability.Cell `json:"calendar"`
}
