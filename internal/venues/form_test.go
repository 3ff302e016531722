package venues

import (
	"encoding/json"
	"testing"

	"holidaze/pkg/noroff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueForm_DefaultPayload(t *testing.T) {
	form := NewVenueForm()
	require.Len(t, form.Media, 1)

	body, err := json.Marshal(form.Payload())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "", "description": "", "media": [], "price": 0, "maxGuests": 0, "rating": 0,
		"meta": {"wifi": false, "parking": false, "breakfast": false, "pets": false},
		"location": {"address": "", "city": "", "zip": "", "country": "", "continent": "", "lat": 0, "lng": 0}
	}`, string(body))
}

func TestVenueForm_Setters(t *testing.T) {
	form := NewVenueForm()
	form.SetText(FieldName, "Sea cabin")
	form.SetText(FieldDescription, "By the fjord")
	form.SetNumber(FieldPrice, 1250.5)
	form.SetNumber(FieldMaxGuests, 4.9)
	form.SetNumber(FieldRating, 4)
	form.SetAmenity(AmenityWifi, true)
	form.SetAmenity(AmenityPets, true)
	form.SetLocation(LocationCity, "Bergen")
	form.SetLocation(LocationCountry, "Norway")
	form.SetLocationCoord(CoordLat, 60.39)
	form.SetLocationCoord(CoordLng, 5.32)
	require.NoError(t, form.SetMedia(0, MediaURL, "https://img.example/1.jpg"))
	require.NoError(t, form.SetMedia(2, MediaURL, "https://img.example/3.jpg"))
	require.NoError(t, form.SetMedia(2, MediaAlt, "Deck"))
	assert.Error(t, form.SetMedia(-1, MediaURL, "x"))

	require.Len(t, form.Media, 3, "media grows to the edited row")

	payload := form.Payload()
	assert.Equal(t, "Sea cabin", payload.Name)
	assert.Equal(t, 4, payload.MaxGuests)
	assert.Equal(t, 1250.5, payload.Price)
	assert.True(t, payload.Meta.Wifi)
	assert.False(t, payload.Meta.Parking)
	assert.True(t, payload.Meta.Pets)
	assert.Equal(t, "Bergen", payload.Location.City)
	assert.Equal(t, 60.39, payload.Location.Lat)
	assert.Equal(t, []noroff.Media{
		{URL: "https://img.example/1.jpg"},
		{URL: "https://img.example/3.jpg", Alt: "Deck"},
	}, payload.Media, "rows without a URL are dropped")
}

func TestFormFromVenue_RoundTrip(t *testing.T) {
	venue := noroff.Venue{
		ID:          "v-1",
		Name:        "Loft",
		Description: "Top floor",
		Media:       []noroff.Media{{URL: "https://img.example/loft.jpg", Alt: "Loft"}},
		Price:       900,
		MaxGuests:   2,
		Rating:      3.5,
		Meta:        noroff.Amenities{Breakfast: true},
		Location:    noroff.Location{Address: "Storgata 1", City: "Oslo", Zip: "0155", Country: "Norway", Continent: "Europe", Lat: 59.9, Lng: 10.7},
	}

	payload := FormFromVenue(venue).Payload()

	assert.Equal(t, venue.Name, payload.Name)
	assert.Equal(t, venue.Description, payload.Description)
	assert.Equal(t, venue.Media, payload.Media)
	assert.Equal(t, venue.MaxGuests, payload.MaxGuests)
	assert.Equal(t, venue.Meta, payload.Meta)
	assert.Equal(t, venue.Location, payload.Location)

	assert.Len(t, FormFromVenue(noroff.Venue{}).Media, 1)
}

func TestUpdateVenueRequest_OnlyTouchesPresentFields(t *testing.T) {
	form := FormFromVenue(noroff.Venue{
		Name:     "Loft",
		Price:    900,
		Media:    []noroff.Media{{URL: "https://img.example/old.jpg"}},
		Meta:     noroff.Amenities{Wifi: true},
		Location: noroff.Location{City: "Oslo"},
	})

	price := 1000.0
	parking := true
	country := "Norway"
	UpdateVenueRequest{
		Price:    &price,
		Meta:     &AmenitiesRequest{Parking: &parking},
		Location: &LocationRequest{Country: &country},
	}.Apply(&form)

	payload := form.Payload()
	assert.Equal(t, "Loft", payload.Name)
	assert.Equal(t, 1000.0, payload.Price)
	assert.True(t, payload.Meta.Wifi)
	assert.True(t, payload.Meta.Parking)
	assert.Equal(t, "Oslo", payload.Location.City)
	assert.Equal(t, "Norway", payload.Location.Country)
	assert.Equal(t, "https://img.example/old.jpg", payload.Media[0].URL)

	UpdateVenueRequest{Media: []MediaRequest{{URL: "https://img.example/new.jpg", Alt: "New"}}}.Apply(&form)
	assert.Equal(t, []noroff.Media{{URL: "https://img.example/new.jpg", Alt: "New"}}, form.Payload().Media)

	UpdateVenueRequest{}.Apply(&form)
	assert.Len(t, form.Payload().Media, 1)

	UpdateVenueRequest{Media: []MediaRequest{}}.Apply(&form)
	assert.Empty(t, form.Payload().Media)
	assert.NotNil(t, form.Payload().Media)
}

func TestUpdateVenueRequest_EmptyMediaFromJSON(t *testing.T) {
	var req UpdateVenueRequest
	require.NoError(t, json.Unmarshal([]byte(`{"media":[]}`), &req))

	form := FormFromVenue(noroff.Venue{Media: []noroff.Media{{URL: "https://img.example/old.jpg"}}})
	req.Apply(&form)
	assert.Empty(t, form.Payload().Media)
}

func TestCreateVenueRequest_Apply(t *testing.T) {
	wifi := true
	form := NewVenueForm()
	CreateVenueRequest{
		Name:        "Cabin",
		Description: "Quiet",
		Media:       []MediaRequest{{URL: "https://img.example/c.jpg"}},
		Price:       500,
		MaxGuests:   6,
		Rating:      5,
		Meta:        &AmenitiesRequest{Wifi: &wifi},
	}.Apply(&form)

	payload := form.Payload()
	assert.Equal(t, "Cabin", payload.Name)
	assert.Equal(t, 6, payload.MaxGuests)
	assert.True(t, payload.Meta.Wifi)
	assert.Len(t, payload.Media, 1)
}
