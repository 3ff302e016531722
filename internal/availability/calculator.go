// Package availability works out which calendar days of a venue are taken.
package availability

import (
	"sort"
	"time"

	"holidaze/pkg/noroff"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusMine      Status = "mine"
)

// Range is one booking's inclusive span of days
type Range struct {
	From       Day
	To         Day
	CustomerID string
}

// RangesFromBookings converts upstream bookings. The customer is identified by profile name.
func RangesFromBookings(bookings []noroff.Booking, loc *time.Location) []Range {
	ranges := make([]Range, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, Range{
			From:       DayOf(b.DateFrom, loc),
			To:         DayOf(b.DateTo, loc),
			CustomerID: b.CustomerName(),
		})
	}
	return ranges
}

type daySet map[Day]struct{}

func (s daySet) sorted() []Day {
	days := make([]Day, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Result holds the unavailable days and the viewer's own subset of them
type Result struct {
	unavailable daySet
	mine        daySet
}

// Calculate expands every range day by day. A range with From after To adds nothing.
// An empty viewerID never matches a customer.
func Calculate(ranges []Range, viewerID string) Result {
	res := Result{
		unavailable: daySet{},
		mine:        daySet{},
	}

	for _, r := range ranges {
		for d := r.From; !d.After(r.To); d = d.AddDays(1) {
			res.unavailable[d] = struct{}{}
		}
	}

	if viewerID == "" {
		return res
	}

	for _, r := range ranges {
		if r.CustomerID != viewerID {
			continue
		}
		for d := r.From; !d.After(r.To); d = d.AddDays(1) {
			res.mine[d] = struct{}{}
		}
	}

	return res
}

// Status classifies a day; mine wins over booked
func (r Result) Status(d Day) Status {
	if _, ok := r.mine[d]; ok {
		return StatusMine
	}
	if _, ok := r.unavailable[d]; ok {
		return StatusBooked
	}
	return StatusAvailable
}

// IsAvailable reports whether no day in [from, to] is taken
func (r Result) IsAvailable(from, to Day) bool {
	for d := from; !d.After(to); d = d.AddDays(1) {
		if _, ok := r.unavailable[d]; ok {
			return false
		}
	}
	return true
}

func (r Result) UnavailableDays() []Day {
	return r.unavailable.sorted()
}

func (r Result) MineDays() []Day {
	return r.mine.sorted()
}
