package venues

import "holidaze/pkg/noroff"

// VenueSummary is what a catalog card shows
type VenueSummary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Media       *noroff.Media    `json:"media,omitempty"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Rating      float64          `json:"rating"`
	Meta        noroff.Amenities `json:"meta"`
	Address     string           `json:"address"`
	City        string           `json:"city"`
	Country     string           `json:"country"`
	Bookings    int              `json:"bookings"`
}

type CatalogResponse struct {
	Query    string         `json:"query"`
	NextPage int            `json:"next_page"`
	HasMore  bool           `json:"has_more"`
	Total    int            `json:"total"`
	Venues   []VenueSummary `json:"venues"`
}

func toSummary(v noroff.Venue) VenueSummary {
	s := VenueSummary{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta:        v.Meta,
		Address:     v.Location.Address,
		City:        v.Location.City,
		Country:     v.Location.Country,
		Bookings:    v.BookingCount(),
	}
	if len(v.Media) > 0 {
		first := v.Media[0]
		s.Media = &first
	}
	return s
}

func toCatalogResponse(c *Catalog) CatalogResponse {
	venues := make([]VenueSummary, 0, len(c.Venues))
	for _, v := range c.Venues {
		venues = append(venues, toSummary(v))
	}
	return CatalogResponse{
		Query:    c.Query,
		NextPage: c.NextPage,
		HasMore:  c.HasMore,
		Total:    len(venues),
		Venues:   venues,
	}
}
