// Package calendar answers date-occupancy questions over a set of bookings
// and lays out month views for the bookings calendar.
// Everything here is a pure function of its inputs.
package calendar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// OccupantsOn returns every booking with CheckIn <= d < CheckOut, in input
// order. A zero date (month-grid padding) has no occupants.
// The result is never nil.
func OccupantsOn(d domain.Date, bookings []domain.Booking) []domain.Booking {
	out := []domain.Booking{}
	if d.IsZero() {
		return out
	}
	for _, b := range bookings {
		if b.Occupies(d) {
			out = append(out, b)
		}
	}
	return out
}

// IsCheckInDay reports whether d is the booking's first occupied day.
func IsCheckInDay(d domain.Date, b domain.Booking) bool {
	return !d.IsZero() && d == b.CheckIn
}

// IsLastOccupiedDay reports whether d is the last night of the stay, the day
// before check-out. Calendar views draw the end cap of a booking bar here.
func IsLastOccupiedDay(d domain.Date, b domain.Booking) bool {
	return !d.IsZero() && d == b.CheckOut.AddDays(-1)
}

// DayMarker describes how a booking's bar is drawn on one of its days.
type DayMarker string

const (
	MarkerCheckIn     DayMarker = "check_in"
	MarkerLastNight   DayMarker = "last_night"
	MarkerPassThrough DayMarker = "pass_through"
	// MarkerSingleNight is a one-night stay: check-in and last night at once.
	MarkerSingleNight DayMarker = "single_night"
)

// MarkerFor returns the marker for booking b on d. The caller must ensure b
// occupies d.
func MarkerFor(d domain.Date, b domain.Booking) DayMarker {
	in, last := IsCheckInDay(d, b), IsLastOccupiedDay(d, b)
	switch {
	case in && last:
		return MarkerSingleNight
	case in:
		return MarkerCheckIn
	case last:
		return MarkerLastNight
	default:
		return MarkerPassThrough
	}
}

// AssertNoConflict returns an error wrapping domain.ErrConflict if any
// booking in existing holds roomID for a day in [checkIn, checkOut).
// Bookings without a room, or for other rooms, never conflict, and a nil
// roomID never conflicts.
func AssertNoConflict(roomID *uuid.UUID, checkIn, checkOut domain.Date, existing []domain.Booking) error {
	if roomID == nil {
		return nil
	}
	for _, b := range existing {
		if b.RoomID == nil || *b.RoomID != *roomID {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return fmt.Errorf("%w: room is already booked from %s to %s", domain.ErrConflict, b.CheckIn, b.CheckOut)
		}
	}
	return nil
}
