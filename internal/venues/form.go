package venues

import (
	"fmt"
	"math"
	"strings"

	"holidaze/pkg/noroff"
)

type TextField int

const (
	FieldName TextField = iota
	FieldDescription
)

type NumberField int

const (
	FieldPrice NumberField = iota
	FieldMaxGuests
	FieldRating
)

type Amenity int

const (
	AmenityWifi Amenity = iota
	AmenityParking
	AmenityBreakfast
	AmenityPets
)

type LocationField int

const (
	LocationAddress LocationField = iota
	LocationCity
	LocationZip
	LocationCountry
	LocationContinent
)

type CoordField int

const (
	CoordLat CoordField = iota
	CoordLng
)

type MediaField int

const (
	MediaURL MediaField = iota
	MediaAlt
)

type MediaForm struct {
	URL string
	Alt string
}

type AmenitiesForm struct {
	Wifi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

type LocationForm struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Lat       float64
	Lng       float64
}

// VenueForm is the create/edit venue form state
type VenueForm struct {
	Name        string
	Description string
	Media       []MediaForm
	Price       float64
	MaxGuests   float64
	Rating      float64
	Meta        AmenitiesForm
	Location    LocationForm
}

// NewVenueForm is the blank create form with one empty media row
func NewVenueForm() VenueForm {
	return VenueForm{Media: []MediaForm{{}}}
}

// FormFromVenue seeds the edit form from an existing venue
func FormFromVenue(v noroff.Venue) VenueForm {
	f := VenueForm{
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   float64(v.MaxGuests),
		Rating:      v.Rating,
		Meta: AmenitiesForm{
			Wifi:      v.Meta.Wifi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: LocationForm{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
		},
	}
	for _, m := range v.Media {
		f.Media = append(f.Media, MediaForm{URL: m.URL, Alt: m.Alt})
	}
	if len(f.Media) == 0 {
		f.Media = []MediaForm{{}}
	}
	return f
}

func (f *VenueForm) SetText(field TextField, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldDescription:
		f.Description = value
	}
}

func (f *VenueForm) SetNumber(field NumberField, value float64) {
	switch field {
	case FieldPrice:
		f.Price = value
	case FieldMaxGuests:
		f.MaxGuests = value
	case FieldRating:
		f.Rating = value
	}
}

func (f *VenueForm) SetAmenity(a Amenity, on bool) {
	switch a {
	case AmenityWifi:
		f.Meta.Wifi = on
	case AmenityParking:
		f.Meta.Parking = on
	case AmenityBreakfast:
		f.Meta.Breakfast = on
	case AmenityPets:
		f.Meta.Pets = on
	}
}

func (f *VenueForm) SetLocation(field LocationField, value string) {
	switch field {
	case LocationAddress:
		f.Location.Address = value
	case LocationCity:
		f.Location.City = value
	case LocationZip:
		f.Location.Zip = value
	case LocationCountry:
		f.Location.Country = value
	case LocationContinent:
		f.Location.Continent = value
	}
}

func (f *VenueForm) SetLocationCoord(field CoordField, value float64) {
	switch field {
	case CoordLat:
		f.Location.Lat = value
	case CoordLng:
		f.Location.Lng = value
	}
}

// SetMedia edits row index, adding empty rows up to it when needed
func (f *VenueForm) SetMedia(index int, field MediaField, value string) error {
	if index < 0 {
		return fmt.Errorf("media index %d out of range", index)
	}
	for len(f.Media) <= index {
		f.Media = append(f.Media, MediaForm{})
	}
	switch field {
	case MediaURL:
		f.Media[index].URL = value
	case MediaAlt:
		f.Media[index].Alt = value
	}
	return nil
}

// TruncateMedia drops rows from n on
func (f *VenueForm) TruncateMedia(n int) {
	if n >= 0 && n < len(f.Media) {
		f.Media = f.Media[:n]
	}
}

// VenuePayload is the holidaze/venues create and update body
type VenuePayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Media       []noroff.Media   `json:"media"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Rating      float64          `json:"rating"`
	Meta        noroff.Amenities `json:"meta"`
	Location    noroff.Location  `json:"location"`
}

// Payload maps the form to the write body. Rows without a URL are left out.
func (f VenueForm) Payload() VenuePayload {
	media := make([]noroff.Media, 0, len(f.Media))
	for _, m := range f.Media {
		url := strings.TrimSpace(m.URL)
		if url == "" {
			continue
		}
		media = append(media, noroff.Media{URL: url, Alt: m.Alt})
	}

	return VenuePayload{
		Name:        f.Name,
		Description: f.Description,
		Media:       media,
		Price:       f.Price,
		MaxGuests:   int(math.Trunc(f.MaxGuests)),
		Rating:      f.Rating,
		Meta: noroff.Amenities{
			Wifi:      f.Meta.Wifi,
			Parking:   f.Meta.Parking,
			Breakfast: f.Meta.Breakfast,
			Pets:      f.Meta.Pets,
		},
		Location: noroff.Location{
			Address:   f.Location.Address,
			City:      f.Location.City,
			Zip:       f.Location.Zip,
			Country:   f.Location.Country,
			Continent: f.Location.Continent,
			Lat:       f.Location.Lat,
			Lng:       f.Location.Lng,
		},
	}
}
