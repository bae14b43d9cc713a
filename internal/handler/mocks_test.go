package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/handler"
)

// ---- mock servicers --------------------------------------------------------
// Set only the method fields your test needs.

type mockBookingServicer struct {
	create       func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	listPaged    func(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error)
	updateStatus func(ctx context.Context, id uuid.UUID, s domain.BookingStatus) (domain.Booking, error)
	toggle       func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	delete       func(ctx context.Context, id uuid.UUID) error
	stats        func(ctx context.Context) (domain.BookingStats, error)
}

func (m *mockBookingServicer) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingServicer) ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockBookingServicer) UpdateStatus(ctx context.Context, id uuid.UUID, s domain.BookingStatus) (domain.Booking, error) {
	return m.updateStatus(ctx, id, s)
}
func (m *mockBookingServicer) ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.toggle(ctx, id)
}
func (m *mockBookingServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockBookingServicer) Stats(ctx context.Context) (domain.BookingStats, error) {
	return m.stats(ctx)
}

// compile-time check: mockBookingServicer must satisfy handler.BookingServicer.
var _ handler.BookingServicer = (*mockBookingServicer)(nil)

type mockRoomServicer struct {
	create    func(ctx context.Context, r domain.Room) (domain.Room, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Room, error)
	listPaged func(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error)
	update    func(ctx context.Context, r domain.Room) (domain.Room, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRoomServicer) Create(ctx context.Context, r domain.Room) (domain.Room, error) {
	return m.create(ctx, r)
}
func (m *mockRoomServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	return m.getByID(ctx, id)
}
func (m *mockRoomServicer) ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockRoomServicer) Update(ctx context.Context, r domain.Room) (domain.Room, error) {
	return m.update(ctx, r)
}
func (m *mockRoomServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.RoomServicer = (*mockRoomServicer)(nil)

type mockOrderServicer struct {
	create       func(ctx context.Context, o domain.Order) (domain.Order, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Order, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error)
	updateStatus func(ctx context.Context, id uuid.UUID, s domain.OrderStatus) (domain.Order, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockOrderServicer) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	return m.create(ctx, o)
}
func (m *mockOrderServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	return m.getByID(ctx, id)
}
func (m *mockOrderServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockOrderServicer) UpdateStatus(ctx context.Context, id uuid.UUID, s domain.OrderStatus) (domain.Order, error) {
	return m.updateStatus(ctx, id, s)
}
func (m *mockOrderServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.OrderServicer = (*mockOrderServicer)(nil)

type mockCalendarServicer struct {
	month       func(ctx context.Context, year int, month time.Month) (calendar.MonthView, error)
	occupantsOn func(ctx context.Context, d domain.Date) ([]domain.Booking, error)
}

func (m *mockCalendarServicer) Month(ctx context.Context, year int, month time.Month) (calendar.MonthView, error) {
	return m.month(ctx, year, month)
}
func (m *mockCalendarServicer) OccupantsOn(ctx context.Context, d domain.Date) ([]domain.Booking, error) {
	return m.occupantsOn(ctx, d)
}

var _ handler.CalendarServicer = (*mockCalendarServicer)(nil)

type mockReportServicer struct {
	build func(ctx context.Context, kind domain.ReportKind, r domain.DateRange) (domain.Report, error)
}

func (m *mockReportServicer) Build(ctx context.Context, kind domain.ReportKind, r domain.DateRange) (domain.Report, error) {
	return m.build(ctx, kind, r)
}

var _ handler.ReportServicer = (*mockReportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// services groups the mocks a test wires into the router. Nil fields get an
// empty mock so unexpected calls panic instead of silently passing.
type services struct {
	bookings *mockBookingServicer
	rooms    *mockRoomServicer
	orders   *mockOrderServicer
	calendar *mockCalendarServicer
	reports  *mockReportServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(s services) http.Handler {
	if s.bookings == nil {
		s.bookings = &mockBookingServicer{}
	}
	if s.rooms == nil {
		s.rooms = &mockRoomServicer{}
	}
	if s.orders == nil {
		s.orders = &mockOrderServicer{}
	}
	if s.calendar == nil {
		s.calendar = &mockCalendarServicer{}
	}
	if s.reports == nil {
		s.reports = &mockReportServicer{}
	}
	return handler.NewServer(s.bookings, s.rooms, s.orders, s.calendar, s.reports).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
