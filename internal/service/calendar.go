package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/hotel-admin/internal/cache"
	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/repo"
)

// CalendarService serves the bookings calendar: month views and per-day
// occupant lookups.
type CalendarService struct {
	bookings repo.BookingRepo
	cache    MonthCache
	log      *slog.Logger
}

// NewCalendarService constructs a CalendarService. months may be nil.
func NewCalendarService(bookings repo.BookingRepo, months MonthCache, log *slog.Logger) *CalendarService {
	if months == nil {
		months = cache.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &CalendarService{bookings: bookings, cache: months, log: log}
}

// Month returns the laid-out month with every booking that touches it.
// Cache read and write failures fall through to the database.
func (s *CalendarService) Month(ctx context.Context, year int, month time.Month) (calendar.MonthView, error) {
	if year < 1 || year > 9999 {
		return calendar.MonthView{}, fmt.Errorf("%w: year must be between 1 and 9999", domain.ErrValidation)
	}
	if month < time.January || month > time.December {
		return calendar.MonthView{}, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}

	// The generation is read before the bookings: a write that lands while
	// the query runs retires it, and the month stored below is never served.
	view, gen, status := s.cached(ctx, year, month)
	if status == cacheHit {
		return view, nil
	}

	bookings, err := s.bookings.ListOverlapping(ctx, calendar.MonthRange(year, month))
	if err != nil {
		return calendar.MonthView{}, fmt.Errorf("service.CalendarService.Month: %w", err)
	}
	view, err = calendar.BuildMonth(year, month, bookings)
	if err != nil {
		return calendar.MonthView{}, err
	}

	if status == cacheMiss {
		if payload, err := json.Marshal(view); err == nil {
			if err := s.cache.SetMonth(ctx, gen, year, month, payload); err != nil {
				s.log.WarnContext(ctx, "calendar cache write failed", "error", err, "year", year, "month", int(month))
			}
		}
	}
	return view, nil
}

type cacheStatus int

const (
	cacheHit cacheStatus = iota
	cacheMiss
	// cacheDown means the generation is unknown and nothing may be stored.
	cacheDown
)

func (s *CalendarService) cached(ctx context.Context, year int, month time.Month) (calendar.MonthView, int64, cacheStatus) {
	payload, gen, ok, err := s.cache.GetMonth(ctx, year, month)
	if err != nil {
		s.log.WarnContext(ctx, "calendar cache read failed", "error", err, "year", year, "month", int(month))
		return calendar.MonthView{}, 0, cacheDown
	}
	if !ok {
		return calendar.MonthView{}, gen, cacheMiss
	}
	var view calendar.MonthView
	if err := json.Unmarshal(payload, &view); err != nil {
		s.log.WarnContext(ctx, "calendar cache entry unreadable", "error", err, "year", year, "month", int(month))
		return calendar.MonthView{}, gen, cacheMiss
	}
	return view, gen, cacheHit
}

// OccupantsOn returns the bookings holding a room on d, ordered by check-in.
func (s *CalendarService) OccupantsOn(ctx context.Context, d domain.Date) ([]domain.Booking, error) {
	if d.IsZero() {
		return []domain.Booking{}, nil
	}
	bookings, err := s.bookings.ListOverlapping(ctx, domain.DateRange{From: d, To: d.AddDays(1)})
	if err != nil {
		return nil, fmt.Errorf("service.CalendarService.OccupantsOn: %w", err)
	}
	return calendar.OccupantsOn(d, bookings), nil
}
