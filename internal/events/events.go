// Package events publishes booking lifecycle events to RabbitMQ so that
// downstream consumers (housekeeping, notifications) can react without
// polling the database.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// Type names a booking lifecycle transition.
type Type string

const (
	BookingCreated       Type = "booking.created"
	BookingStatusChanged Type = "booking.status_changed"
	BookingDeleted       Type = "booking.deleted"
)

// BookingEvent is the JSON payload published for every booking write.
// EventID is unique per event; BookingID repeats across a booking's events.
type BookingEvent struct {
	EventID     uuid.UUID  `json:"event_id"`
	Type        Type       `json:"type"`
	BookingID   uuid.UUID  `json:"booking_id"`
	GuestName   string     `json:"guest_name"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	CheckIn     string     `json:"check_in"`
	CheckOut    string     `json:"check_out"`
	Status      string     `json:"status"`
	AmountCents int64      `json:"amount_cents"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// NewBookingEvent snapshots b into an event of type t.
func NewBookingEvent(t Type, b domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		EventID:     uuid.New(),
		Type:        t,
		BookingID:   b.ID,
		GuestName:   b.GuestName,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn.String(),
		CheckOut:    b.CheckOut.String(),
		Status:      string(b.Status),
		AmountCents: b.AmountCents,
		OccurredAt:  at.UTC(),
	}
}
