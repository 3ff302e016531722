package bookings

type CreateBookingRequest struct {
	VenueID  string `json:"venueId" binding:"required"`
	DateFrom string `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" binding:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" binding:"required,min=1"`
}
