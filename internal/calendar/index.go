package calendar

import (
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// Index buckets bookings by occupied day so repeated per-day lookups over
// the same booking set do not rescan every booking.
// Only days inside the window given to NewIndex are bucketed; a stay of any
// length costs at most one entry per window day.
// It is immutable after NewIndex and safe for concurrent reads.
type Index struct {
	window   domain.DateRange
	bookings []domain.Booking
	byDay    map[domain.Date][]int
}

// NewIndex builds an index over bookings for the days in window. The slice
// is copied. Bookings whose CheckOut is not after CheckIn occupy no days.
func NewIndex(window domain.DateRange, bookings []domain.Booking) *Index {
	idx := &Index{
		window:   window,
		bookings: slices.Clone(bookings),
		byDay:    make(map[domain.Date][]int),
	}
	for i, b := range idx.bookings {
		from, to := b.CheckIn, b.CheckOut
		if from.Before(window.From) {
			from = window.From
		}
		if window.To.Before(to) {
			to = window.To
		}
		for d := from; d.Before(to); d = d.AddDays(1) {
			idx.byDay[d] = append(idx.byDay[d], i)
		}
	}
	return idx
}

// Len returns the number of indexed bookings.
func (idx *Index) Len() int {
	return len(idx.bookings)
}

// Window returns the range of days the index answers for.
func (idx *Index) Window() domain.DateRange {
	return idx.window
}

// OccupantsOn returns the bookings occupying d in the order they were given
// to NewIndex. Within the window it agrees with the package-level
// OccupantsOn; outside it the result is empty.
func (idx *Index) OccupantsOn(d domain.Date) []domain.Booking {
	positions := idx.byDay[d]
	out := make([]domain.Booking, len(positions))
	for i, p := range positions {
		out[i] = idx.bookings[p]
	}
	return out
}

// OccupiedCount returns how many bookings occupy d.
func (idx *Index) OccupiedCount(d domain.Date) int {
	return len(idx.byDay[d])
}

// RoomsHeld returns how many distinct rooms are held on d. Bookings without
// a room are not counted.
func (idx *Index) RoomsHeld(d domain.Date) int {
	seen := make(map[uuid.UUID]struct{})
	for _, p := range idx.byDay[d] {
		if id := idx.bookings[p].RoomID; id != nil {
			seen[*id] = struct{}{}
		}
	}
	return len(seen)
}
