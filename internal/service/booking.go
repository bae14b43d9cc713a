// Package service contains the business logic for the hotel admin API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/cache"
	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/events"
	"github.com/pkordes/hotel-admin/internal/repo"
)

// EventPublisher delivers booking lifecycle events to a broker.
// Satisfied by *events.AMQPPublisher and events.Nop.
type EventPublisher interface {
	Publish(ctx context.Context, ev events.BookingEvent) error
}

// MonthCache stores encoded calendar months between booking writes.
// SetMonth takes the generation reported by the preceding GetMonth.
// Satisfied by *cache.Redis and cache.Nop.
type MonthCache interface {
	GetMonth(ctx context.Context, year int, month time.Month) ([]byte, int64, bool, error)
	SetMonth(ctx context.Context, gen int64, year int, month time.Month, payload []byte) error
	Invalidate(ctx context.Context) error
}

// BookingService implements business logic for Booking operations.
// Every successful write invalidates the month cache and publishes an event;
// failures of either are logged and never fail the write.
type BookingService struct {
	bookings repo.BookingRepo
	rooms    repo.RoomRepo
	cache    MonthCache
	events   EventPublisher
	log      *slog.Logger
	now      func() time.Time
}

// NewBookingService constructs a BookingService. months and publisher may be
// nil, in which case caching and event delivery are disabled.
func NewBookingService(bookings repo.BookingRepo, rooms repo.RoomRepo, months MonthCache, publisher EventPublisher, log *slog.Logger) *BookingService {
	if months == nil {
		months = cache.Nop{}
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &BookingService{
		bookings: bookings,
		rooms:    rooms,
		cache:    months,
		events:   publisher,
		log:      log,
		now:      time.Now,
	}
}

// Create validates and persists a new booking. Status defaults to pending.
// Returns domain.ErrValidation if the stay is not strictly forward in time,
// the guest name is blank, the amount is negative, or the room is unknown.
// Returns domain.ErrConflict if the room is already held on one of the nights.
// Nothing is written when an error is returned.
func (s *BookingService) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	b.GuestName = strings.TrimSpace(b.GuestName)
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if err := validateBooking(b); err != nil {
		return domain.Booking{}, err
	}

	if b.RoomID != nil {
		if err := s.checkRoom(ctx, b); err != nil {
			return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
		}
	}

	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	s.afterWrite(ctx, events.BookingCreated, created)
	return created, nil
}

// checkRoom verifies the booking's room exists and is free for the stay.
// The database exclusion constraint backs this up for concurrent writers.
func (s *BookingService) checkRoom(ctx context.Context, b domain.Booking) error {
	if _, err := s.rooms.GetByID(ctx, *b.RoomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: room does not exist", domain.ErrValidation)
		}
		return err
	}
	existing, err := s.bookings.ListByRoom(ctx, *b.RoomID)
	if err != nil {
		return err
	}
	return calendar.AssertNoConflict(b.RoomID, b.CheckIn, b.CheckOut, existing)
}

// GetByID returns a single booking.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return b, nil
}

// ListPaged returns one page of bookings and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: status must be one of pending, confirmed", domain.ErrValidation)
	}
	bookings, total, err := s.bookings.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListPaged: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, total, nil
}

// UpdateStatus sets an explicit status on a booking.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, fmt.Errorf("%w: status must be one of pending, confirmed", domain.ErrValidation)
	}
	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.UpdateStatus: %w", err)
	}
	s.afterWrite(ctx, events.BookingStatusChanged, updated)
	return updated, nil
}

// ToggleStatus flips a booking between pending and confirmed in one write.
func (s *BookingService) ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	updated, err := s.bookings.ToggleStatus(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.ToggleStatus: %w", err)
	}
	s.afterWrite(ctx, events.BookingStatusChanged, updated)
	return updated, nil
}

// Delete removes a booking.
func (s *BookingService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.BookingService.Delete: %w", err)
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.BookingService.Delete: %w", err)
	}
	s.afterWrite(ctx, events.BookingDeleted, current)
	return nil
}

// Stats returns the dashboard summary over all bookings.
func (s *BookingService) Stats(ctx context.Context) (domain.BookingStats, error) {
	stats, err := s.bookings.Stats(ctx)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("service.BookingService.Stats: %w", err)
	}
	return stats, nil
}

func (s *BookingService) afterWrite(ctx context.Context, t events.Type, b domain.Booking) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "calendar cache invalidation failed", "error", err, "booking_id", b.ID)
	}
	if err := s.events.Publish(ctx, events.NewBookingEvent(t, b, s.now())); err != nil {
		s.log.WarnContext(ctx, "booking event publish failed", "error", err, "event", t, "booking_id", b.ID)
	}
}

// validateBooking enforces the rules checked before a booking is stored.
//   - GuestName must be non-empty after trimming.
//   - CheckIn and CheckOut are required and CheckIn must be strictly before CheckOut.
//   - AmountCents must not be negative.
func validateBooking(b domain.Booking) error {
	if b.GuestName == "" {
		return fmt.Errorf("%w: guest_name is required", domain.ErrValidation)
	}
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return fmt.Errorf("%w: check_in and check_out are required", domain.ErrValidation)
	}
	if !b.CheckIn.Before(b.CheckOut) {
		return fmt.Errorf("%w: check-out date must be after check-in date", domain.ErrValidation)
	}
	if b.AmountCents < 0 {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: status must be one of pending, confirmed", domain.ErrValidation)
	}
	return nil
}
