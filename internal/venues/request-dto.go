package venues

type CatalogQuery struct {
	Query string `form:"q" binding:"max=100"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Reset bool   `form:"reset"`
}

type AvailabilityQuery struct {
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	Months int    `form:"months" binding:"omitempty,min=1,max=12"`
}

type MediaRequest struct {
	URL string `json:"url" binding:"omitempty,url"`
	Alt string `json:"alt" binding:"max=120"`
}

type AmenitiesRequest struct {
	Wifi      *bool `json:"wifi"`
	Parking   *bool `json:"parking"`
	Breakfast *bool `json:"breakfast"`
	Pets      *bool `json:"pets"`
}

type LocationRequest struct {
	Address   *string  `json:"address" binding:"omitempty,max=255"`
	City      *string  `json:"city" binding:"omitempty,max=255"`
	Zip       *string  `json:"zip" binding:"omitempty,max=20"`
	Country   *string  `json:"country" binding:"omitempty,max=255"`
	Continent *string  `json:"continent" binding:"omitempty,max=255"`
	Lat       *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng       *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

type CreateVenueRequest struct {
	Name        string            `json:"name" binding:"required,max=255"`
	Description string            `json:"description" binding:"required"`
	Media       []MediaRequest    `json:"media" binding:"omitempty,max=8,dive"`
	Price       float64           `json:"price" binding:"min=0"`
	MaxGuests   float64           `json:"maxGuests" binding:"required,min=1,max=100"`
	Rating      float64           `json:"rating" binding:"min=0,max=5"`
	Meta        *AmenitiesRequest `json:"meta"`
	Location    *LocationRequest  `json:"location"`
}

// UpdateVenueRequest only touches the fields that are present
type UpdateVenueRequest struct {
	Name        *string           `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string           `json:"description" binding:"omitempty,min=1"`
	Media       []MediaRequest    `json:"media" binding:"omitempty,max=8,dive"`
	Price       *float64          `json:"price" binding:"omitempty,min=0"`
	MaxGuests   *float64          `json:"maxGuests" binding:"omitempty,min=1,max=100"`
	Rating      *float64          `json:"rating" binding:"omitempty,min=0,max=5"`
	Meta        *AmenitiesRequest `json:"meta"`
	Location    *LocationRequest  `json:"location"`
}

// Apply writes the request into a blank create form
func (r CreateVenueRequest) Apply(f *VenueForm) {
	f.SetText(FieldName, r.Name)
	f.SetText(FieldDescription, r.Description)
	f.SetNumber(FieldPrice, r.Price)
	f.SetNumber(FieldMaxGuests, r.MaxGuests)
	f.SetNumber(FieldRating, r.Rating)
	if r.Media != nil {
		applyMedia(f, r.Media)
	}
	r.Meta.apply(f)
	r.Location.apply(f)
}

// Apply writes the present fields over an edit form
func (r UpdateVenueRequest) Apply(f *VenueForm) {
	if r.Name != nil {
		f.SetText(FieldName, *r.Name)
	}
	if r.Description != nil {
		f.SetText(FieldDescription, *r.Description)
	}
	if r.Price != nil {
		f.SetNumber(FieldPrice, *r.Price)
	}
	if r.MaxGuests != nil {
		f.SetNumber(FieldMaxGuests, *r.MaxGuests)
	}
	if r.Rating != nil {
		f.SetNumber(FieldRating, *r.Rating)
	}
	if r.Media != nil {
		applyMedia(f, r.Media)
	}
	r.Meta.apply(f)
	r.Location.apply(f)
}

// a present media list replaces the rows entirely, an empty one clears them
func applyMedia(f *VenueForm, media []MediaRequest) {
	f.TruncateMedia(0)
	for i, m := range media {
		_ = f.SetMedia(i, MediaURL, m.URL)
		_ = f.SetMedia(i, MediaAlt, m.Alt)
	}
}

func (r *AmenitiesRequest) apply(f *VenueForm) {
	if r == nil {
		return
	}
	set := func(a Amenity, v *bool) {
		if v != nil {
			f.SetAmenity(a, *v)
		}
	}
	set(AmenityWifi, r.Wifi)
	set(AmenityParking, r.Parking)
	set(AmenityBreakfast, r.Breakfast)
	set(AmenityPets, r.Pets)
}

func (r *LocationRequest) apply(f *VenueForm) {
	if r == nil {
		return
	}
	text := func(field LocationField, v *string) {
		if v != nil {
			f.SetLocation(field, *v)
		}
	}
	text(LocationAddress, r.Address)
	text(LocationCity, r.City)
	text(LocationZip, r.Zip)
	text(LocationCountry, r.Country)
	text(LocationContinent, r.Continent)
	if r.Lat != nil {
		f.SetLocationCoord(CoordLat, *r.Lat)
	}
	if r.Lng != nil {
		f.SetLocationCoord(CoordLng, *r.Lng)
	}
}
