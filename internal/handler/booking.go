package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// BookingRequest is the body of POST /bookings.
type BookingRequest struct {
	GuestName   string      `json:"guest_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	RoomID      *uuid.UUID  `json:"room_id"`
	CheckIn     domain.Date `json:"check_in"`
	CheckOut    domain.Date `json:"check_out"`
	Status      string      `json:"status"`
	AmountCents int64       `json:"amount_cents"`
}

// Booking is the JSON representation of a booking.
type Booking struct {
	ID          uuid.UUID   `json:"id"`
	GuestName   string      `json:"guest_name"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	RoomID      *uuid.UUID  `json:"room_id"`
	CheckIn     domain.Date `json:"check_in"`
	CheckOut    domain.Date `json:"check_out"`
	Nights      int         `json:"nights"`
	Status      string      `json:"status"`
	AmountCents int64       `json:"amount_cents"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// BookingList is the body of GET /bookings.
type BookingList struct {
	Data       []Booking  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// StatusRequest is the body of the PUT .../status endpoints.
type StatusRequest struct {
	Status string `json:"status"`
}

// BookingStats is the body of GET /bookings/stats.
type BookingStats struct {
	Total                 int   `json:"total"`
	Pending               int   `json:"pending"`
	Confirmed             int   `json:"confirmed"`
	RevenueCents          int64 `json:"revenue_cents"`
	ConfirmedRevenueCents int64 `json:"confirmed_revenue_cents"`
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body BookingRequest
	if err := decodeJSON(r, &body); err != nil {
		requestError(w, err)
		return
	}

	created, err := s.bookings.Create(r.Context(), requestToBooking(body))
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusCreated, bookingToResponse(created))
}

// ListBookings handles GET /bookings.
// Supports ?page=, ?limit= and ?status=pending|confirmed.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		paramError(w, err)
		return
	}
	filter := domain.BookingFilter{Status: domain.BookingStatus(r.URL.Query().Get("status"))}

	bookings, total, err := s.bookings.ListPaged(r.Context(), filter, params)
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, BookingList{Data: bookingsToResponse(bookings), Pagination: pagination(params, total)})
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	b, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(b))
}

// DeleteBooking handles DELETE /bookings/{id}.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	if err := s.bookings.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateBookingStatus handles PUT /bookings/{id}/status.
func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	var body StatusRequest
	if err := decodeJSON(r, &body); err != nil {
		requestError(w, err)
		return
	}
	updated, err := s.bookings.UpdateStatus(r.Context(), id, domain.BookingStatus(body.Status))
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(updated))
}

// ToggleBookingStatus handles POST /bookings/{id}/status/toggle.
func (s *Server) ToggleBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	updated, err := s.bookings.ToggleStatus(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(updated))
}

// GetBookingStats handles GET /bookings/stats.
func (s *Server) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.bookings.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, BookingStats{
		Total:                 st.Total,
		Pending:               st.Pending,
		Confirmed:             st.Confirmed,
		RevenueCents:          st.RevenueCents,
		ConfirmedRevenueCents: st.ConfirmedRevenueCents,
	})
}

// --- mapping helpers --------------------------------------------------------

func requestToBooking(body BookingRequest) domain.Booking {
	return domain.Booking{
		GuestName:   body.GuestName,
		Email:       body.Email,
		Phone:       body.Phone,
		RoomID:      body.RoomID,
		CheckIn:     body.CheckIn,
		CheckOut:    body.CheckOut,
		Status:      domain.BookingStatus(body.Status),
		AmountCents: body.AmountCents,
	}
}

func bookingToResponse(b domain.Booking) Booking {
	return Booking{
		ID:          b.ID,
		GuestName:   b.GuestName,
		Email:       b.Email,
		Phone:       b.Phone,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Nights:      b.Nights(),
		Status:      string(b.Status),
		AmountCents: b.AmountCents,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func bookingsToResponse(bookings []domain.Booking) []Booking {
	out := make([]Booking, len(bookings))
	for i, b := range bookings {
		out[i] = bookingToResponse(b)
	}
	return out
}
