package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/repo"
)

// maxOccupancyDays bounds the per-day occupancy report.
const maxOccupancyDays = 366

// ReportService assembles the downloadable dashboard reports as uniform
// tables. Encoding (CSV or JSON) is left to the handler.
type ReportService struct {
	bookings repo.BookingRepo
	rooms    repo.RoomRepo
	orders   repo.OrderRepo
	now      func() time.Time
}

// NewReportService constructs a ReportService backed by the provided repos.
func NewReportService(bookings repo.BookingRepo, rooms repo.RoomRepo, orders repo.OrderRepo) *ReportService {
	return &ReportService{bookings: bookings, rooms: rooms, orders: orders, now: time.Now}
}

// Build produces the report of the given kind over r.
// For financial and restaurant-sales reports a zero range means all time;
// the occupancy report defaults to the current month. A range with only one
// bound set is rejected.
func (s *ReportService) Build(ctx context.Context, kind domain.ReportKind, r domain.DateRange) (domain.Report, error) {
	if r.From.IsZero() != r.To.IsZero() {
		return domain.Report{}, fmt.Errorf("%w: from and to must be given together", domain.ErrValidation)
	}
	if !r.From.IsZero() && !r.From.Before(r.To) {
		return domain.Report{}, fmt.Errorf("%w: from must be before to", domain.ErrValidation)
	}

	var (
		rep domain.Report
		err error
	)
	switch kind {
	case domain.ReportFinancial:
		rep, err = s.financial(ctx, r)
	case domain.ReportOccupancy:
		rep, err = s.occupancy(ctx, r)
	case domain.ReportRestaurantSales:
		rep, err = s.restaurantSales(ctx, r)
	default:
		return domain.Report{}, fmt.Errorf("%w: unknown report %q", domain.ErrValidation, kind)
	}
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Build: %w", err)
	}
	rep.Kind = kind
	return rep, nil
}

// financial lists one row per booking.
func (s *ReportService) financial(ctx context.Context, r domain.DateRange) (domain.Report, error) {
	var (
		bookings []domain.Booking
		err      error
	)
	if r.From.IsZero() {
		bookings, err = s.bookings.List(ctx)
	} else {
		bookings, err = s.bookings.ListOverlapping(ctx, r)
	}
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{
		Columns: []string{"booking_id", "guest_name", "check_in", "check_out", "nights", "status", "amount"},
		Rows:    make([][]string, 0, len(bookings)),
	}
	for _, b := range bookings {
		rep.Rows = append(rep.Rows, []string{
			b.ID.String(),
			b.GuestName,
			b.CheckIn.String(),
			b.CheckOut.String(),
			strconv.Itoa(b.Nights()),
			string(b.Status),
			formatCents(b.AmountCents),
		})
	}
	return rep, nil
}

// occupancy lists one row per day with the share of rooms held that night.
// Stays without a room are counted apart and do not raise the rate.
func (s *ReportService) occupancy(ctx context.Context, r domain.DateRange) (domain.Report, error) {
	if r.From.IsZero() {
		today := domain.DateOf(s.now())
		r = calendar.MonthRange(today.Year, today.Month)
	}
	if r.From.DaysUntil(r.To) > maxOccupancyDays {
		return domain.Report{}, fmt.Errorf("%w: occupancy range must not exceed %d days", domain.ErrValidation, maxOccupancyDays)
	}

	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	bookings, err := s.bookings.ListOverlapping(ctx, r)
	if err != nil {
		return domain.Report{}, err
	}
	idx := calendar.NewIndex(r, bookings)

	rep := domain.Report{
		Columns: []string{"date", "occupied", "unassigned", "total_rooms", "occupancy_rate"},
		Rows:    [][]string{},
	}
	for d := r.From; d.Before(r.To); d = d.AddDays(1) {
		occupied := idx.RoomsHeld(d)
		unassigned := countUnassigned(idx.OccupantsOn(d))
		rate := 0.0
		if totalRooms > 0 {
			rate = float64(occupied) / float64(totalRooms) * 100
		}
		rep.Rows = append(rep.Rows, []string{
			d.String(),
			strconv.Itoa(occupied),
			strconv.Itoa(unassigned),
			strconv.FormatInt(totalRooms, 10),
			strconv.FormatFloat(rate, 'f', 1, 64),
		})
	}
	return rep, nil
}

func countUnassigned(bookings []domain.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.RoomID == nil {
			n++
		}
	}
	return n
}

// restaurantSales lists one row per day that had orders.
func (s *ReportService) restaurantSales(ctx context.Context, r domain.DateRange) (domain.Report, error) {
	orders, err := s.orders.ListBetween(ctx, r)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{
		Columns: []string{"date", "orders", "total"},
		Rows:    [][]string{},
	}
	// Orders arrive sorted by day, so each day is one contiguous run.
	for i := 0; i < len(orders); {
		day := orders[i].OrderedOn
		var count int
		var total int64
		for ; i < len(orders) && orders[i].OrderedOn == day; i++ {
			count++
			total += orders[i].AmountCents
		}
		rep.Rows = append(rep.Rows, []string{day.String(), strconv.Itoa(count), formatCents(total)})
	}
	return rep, nil
}

// formatCents renders an amount in cents as a decimal with two places.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
