// Package domain contains the core data types for the hotel admin API.
// It is imported by every other internal package (repo, service, calendar,
// handler) and holds no I/O.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the confirmation state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
)

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Toggle returns the opposite status: pending becomes confirmed and back.
func (s BookingStatus) Toggle() BookingStatus {
	if s == BookingConfirmed {
		return BookingPending
	}
	return BookingConfirmed
}

// ParseBookingStatus converts a wire value into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: status must be one of pending, confirmed", ErrValidation)
	}
	return st, nil
}

// Booking is a guest's stay from CheckIn (inclusive) to CheckOut (exclusive).
// RoomID is nil when the booking has not been assigned a room.
type Booking struct {
	ID          uuid.UUID
	GuestName   string
	Email       string
	Phone       string
	RoomID      *uuid.UUID
	CheckIn     Date
	CheckOut    Date
	Status      BookingStatus
	AmountCents int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Nights returns the number of nights the booking occupies.
func (b Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// Occupies reports whether the booking holds its room on d.
// The check-out day itself is not occupied.
func (b Booking) Occupies(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

// Overlaps reports whether the booking's stay intersects [from, to).
func (b Booking) Overlaps(from, to Date) bool {
	return b.CheckIn.Before(to) && from.Before(b.CheckOut)
}

// BookingFilter narrows a booking listing. A zero value matches everything.
type BookingFilter struct {
	Status BookingStatus
}

// BookingStats is the dashboard summary over all bookings.
type BookingStats struct {
	Total                 int
	Pending               int
	Confirmed             int
	RevenueCents          int64
	ConfirmedRevenueCents int64
}
