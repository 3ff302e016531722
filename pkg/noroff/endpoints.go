package noroff

import (
	"net/url"
	"strconv"
)

const (
	PathRegister = "auth/register"
	PathLogin    = "auth/login"
	PathVenues   = "holidaze/venues"
	PathSearch   = "holidaze/venues/search"
	PathBookings = "holidaze/bookings"
	PathProfiles = "holidaze/profiles"
)

func VenuePath(id string) string {
	return PathVenues + "/" + url.PathEscape(id)
}

func BookingPath(id string) string {
	return PathBookings + "/" + url.PathEscape(id)
}

func ProfilePath(name string) string {
	return PathProfiles + "/" + url.PathEscape(name)
}

func ProfileBookingsPath(name string) string {
	return ProfilePath(name) + "/bookings"
}

func ProfileVenuesPath(name string) string {
	return ProfilePath(name) + "/venues"
}

// Expand builds the _owner/_bookings/_venue/_customer flags
func Expand(flags ...string) url.Values {
	q := url.Values{}
	for _, f := range flags {
		q.Set("_"+f, "true")
	}
	return q
}

// PageQuery adds page, limit and (optional) sort parameters
func PageQuery(q url.Values, page, limit int, sort, sortOrder string) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	if sortOrder != "" {
		q.Set("sortOrder", sortOrder)
	}
	return q
}
