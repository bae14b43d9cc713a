package calendar

import (
	"fmt"
	"time"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// BuildMonthGrid lays out a month for a Sunday-first calendar: one zero
// Date per weekday before the 1st, then every day of the month in order.
// The grid is not padded at the end.
func BuildMonthGrid(year int, month time.Month) ([]domain.Date, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	first := domain.NewDate(year, month, 1)
	lead := int(first.Weekday())
	days := domain.DaysInMonth(year, month)

	grid := make([]domain.Date, lead, lead+days)
	for d := 0; d < days; d++ {
		grid = append(grid, first.AddDays(d))
	}
	return grid, nil
}

// Occupant is one booking drawn on one day of a month view.
type Occupant struct {
	Booking domain.Booking
	Marker  DayMarker
}

// Cell is a single slot of a month view. Padding cells have a zero Date and
// no occupants.
type Cell struct {
	Date      domain.Date
	Occupants []Occupant
}

// MonthView is a month grid with each day's occupants resolved.
type MonthView struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// BuildMonth lays out the month and places every booking on the days it
// occupies, keeping the input order of bookings within a day.
func BuildMonth(year int, month time.Month, bookings []domain.Booking) (MonthView, error) {
	grid, err := BuildMonthGrid(year, month)
	if err != nil {
		return MonthView{}, err
	}

	idx := NewIndex(MonthRange(year, month), bookings)
	view := MonthView{Year: year, Month: month, Cells: make([]Cell, len(grid))}
	for i, d := range grid {
		cell := Cell{Date: d, Occupants: []Occupant{}}
		for _, b := range idx.OccupantsOn(d) {
			cell.Occupants = append(cell.Occupants, Occupant{Booking: b, Marker: MarkerFor(d, b)})
		}
		view.Cells[i] = cell
	}
	return view, nil
}

// MonthRange returns the half-open range of days covered by the month.
func MonthRange(year int, month time.Month) domain.DateRange {
	first := domain.NewDate(year, month, 1)
	return domain.DateRange{From: first, To: first.AddDays(domain.DaysInMonth(year, month))}
}
