// Package handler implements the HTTP handlers for the hotel admin API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, booking.go, etc.) but all share the same Server struct so
// they can access its dependencies. Routes mounts them on a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
)

// BookingServicer defines the business operations the booking handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type BookingServicer interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (domain.BookingStats, error)
}

// RoomServicer defines the business operations the room handlers depend on.
type RoomServicer interface {
	Create(ctx context.Context, room domain.Room) (domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error)
	ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error)
	Update(ctx context.Context, room domain.Room) (domain.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderServicer defines the business operations the restaurant order handlers depend on.
type OrderServicer interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CalendarServicer defines the calendar read operations.
type CalendarServicer interface {
	Month(ctx context.Context, year int, month time.Month) (calendar.MonthView, error)
	OccupantsOn(ctx context.Context, d domain.Date) ([]domain.Booking, error)
}

// ReportServicer builds the downloadable reports.
type ReportServicer interface {
	Build(ctx context.Context, kind domain.ReportKind, r domain.DateRange) (domain.Report, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	bookings BookingServicer
	rooms    RoomServicer
	orders   OrderServicer
	calendar CalendarServicer
	reports  ReportServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(bookings BookingServicer, rooms RoomServicer, orders OrderServicer, cal CalendarServicer, reports ReportServicer) *Server {
	return &Server{
		bookings: bookings,
		rooms:    rooms,
		orders:   orders,
		calendar: cal,
		reports:  reports,
		log:      slog.Default(),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes returns a chi router with every endpoint registered.
// Cross-cutting middleware (request ID, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", s.CreateRoom)
		r.Get("/", s.ListRooms)
		r.Get("/{id}", s.GetRoom)
		r.Put("/{id}", s.UpdateRoom)
		r.Delete("/{id}", s.DeleteRoom)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", s.CreateBooking)
		r.Get("/", s.ListBookings)
		r.Get("/stats", s.GetBookingStats)
		r.Get("/{id}", s.GetBooking)
		r.Delete("/{id}", s.DeleteBooking)
		r.Put("/{id}/status", s.UpdateBookingStatus)
		r.Post("/{id}/status/toggle", s.ToggleBookingStatus)
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/month", s.GetCalendarMonth)
		r.Get("/occupants", s.GetOccupants)
	})

	r.Route("/restaurant/orders", func(r chi.Router) {
		r.Post("/", s.CreateOrder)
		r.Get("/", s.ListOrders)
		r.Get("/{id}", s.GetOrder)
		r.Put("/{id}/status", s.UpdateOrderStatus)
		r.Delete("/{id}", s.DeleteOrder)
	})

	r.Get("/reports/{kind}", s.GetReport)
	return r
}
