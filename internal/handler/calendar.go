package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
)

// CalendarMonth is the body of GET /calendar/month.
type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// CalendarCell is one slot of the month grid. Date is null for the padding
// cells before the 1st.
type CalendarCell struct {
	Date      domain.Date        `json:"date"`
	Occupants []CalendarOccupant `json:"occupants"`
}

// CalendarOccupant is a booking drawn on a day, with how to draw it.
type CalendarOccupant struct {
	Booking Booking `json:"booking"`
	Marker  string  `json:"marker"`
}

// Occupants is the body of GET /calendar/occupants.
type Occupants struct {
	Date domain.Date `json:"date"`
	Data []Booking   `json:"data"`
}

// GetCalendarMonth handles GET /calendar/month?year=&month=.
func (s *Server) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", true)
	if err != nil {
		paramError(w, err)
		return
	}
	month, err := queryInt(r, "month", true)
	if err != nil {
		paramError(w, err)
		return
	}

	view, err := s.calendar.Month(r.Context(), *year, time.Month(*month))
	if err != nil {
		s.writeServiceError(w, r, err, "month not found")
		return
	}
	writeJSON(w, http.StatusOK, monthToResponse(view))
}

// GetOccupants handles GET /calendar/occupants?date=YYYY-MM-DD.
func (s *Server) GetOccupants(w http.ResponseWriter, r *http.Request) {
	d, err := queryDate(r, "date", true)
	if err != nil {
		paramError(w, err)
		return
	}
	bookings, err := s.calendar.OccupantsOn(r.Context(), d)
	if err != nil {
		s.writeServiceError(w, r, err, "date not found")
		return
	}
	writeJSON(w, http.StatusOK, Occupants{Date: d, Data: bookingsToResponse(bookings)})
}

func monthToResponse(view calendar.MonthView) CalendarMonth {
	out := CalendarMonth{
		Year:  view.Year,
		Month: int(view.Month),
		Cells: make([]CalendarCell, len(view.Cells)),
	}
	for i, c := range view.Cells {
		cell := CalendarCell{Date: c.Date, Occupants: make([]CalendarOccupant, len(c.Occupants))}
		for j, o := range c.Occupants {
			cell.Occupants[j] = CalendarOccupant{Booking: bookingToResponse(o.Booking), Marker: string(o.Marker)}
		}
		out.Cells[i] = cell
	}
	return out
}
