package noroff

import "time"

// Envelope is the wrapper every Noroff v2 endpoint returns
type Envelope[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// Meta carries pagination details for list endpoints
type Meta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Amenities is the venue "meta" object
type Amenities struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Count struct {
	Bookings int `json:"bookings"`
	Venues   int `json:"venues"`
}

// Profile is a Noroff user profile. The name is the profile identifier.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
	Count        *Count `json:"_count,omitempty"`
}

type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []Media   `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Meta        Amenities `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
	Count       *Count    `json:"_count,omitempty"`
}

// OwnerName returns the owner's profile name or "" when the owner was not expanded
func (v Venue) OwnerName() string {
	if v.Owner == nil {
		return ""
	}
	return v.Owner.Name
}

// BookingCount prefers the _count aggregate and falls back to expanded bookings
func (v Venue) BookingCount() int {
	if v.Count != nil {
		return v.Count.Bookings
	}
	return len(v.Bookings)
}

type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Venue    *Venue    `json:"venue,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
}

// CustomerName returns the customer's profile name or "" when not expanded
func (b Booking) CustomerName() string {
	if b.Customer == nil {
		return ""
	}
	return b.Customer.Name
}

// AuthSession is the body returned by auth/login
type AuthSession struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	AccessToken  string `json:"accessToken"`
	VenueManager *bool  `json:"venueManager,omitempty"`
}
