package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/events"
	"github.com/pkordes/hotel-admin/internal/repo"
	"github.com/pkordes/hotel-admin/internal/service"
)

// ---- mock repos ------------------------------------------------------------
// Each method is a function field; set only the ones your test needs.

type mockBookingRepo struct {
	create          func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	list            func(ctx context.Context) ([]domain.Booking, error)
	listPaged       func(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error)
	listOverlapping func(ctx context.Context, r domain.DateRange) ([]domain.Booking, error)
	listByRoom      func(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error)
	updateStatus    func(ctx context.Context, id uuid.UUID, s domain.BookingStatus) (domain.Booking, error)
	toggleStatus    func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	delete          func(ctx context.Context, id uuid.UUID) error
	stats           func(ctx context.Context) (domain.BookingStats, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	return m.list(ctx)
}
func (m *mockBookingRepo) ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockBookingRepo) ListOverlapping(ctx context.Context, r domain.DateRange) ([]domain.Booking, error) {
	return m.listOverlapping(ctx, r)
}
func (m *mockBookingRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error) {
	return m.listByRoom(ctx, roomID)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, s domain.BookingStatus) (domain.Booking, error) {
	return m.updateStatus(ctx, id, s)
}
func (m *mockBookingRepo) ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.toggleStatus(ctx, id)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockBookingRepo) Stats(ctx context.Context) (domain.BookingStats, error) {
	return m.stats(ctx)
}

// compile-time check: mockBookingRepo must satisfy repo.BookingRepo.
var _ repo.BookingRepo = (*mockBookingRepo)(nil)

type mockRoomRepo struct {
	create    func(ctx context.Context, r domain.Room) (domain.Room, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Room, error)
	list      func(ctx context.Context) ([]domain.Room, error)
	listPaged func(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error)
	count     func(ctx context.Context) (int64, error)
	update    func(ctx context.Context, r domain.Room) (domain.Room, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRoomRepo) Create(ctx context.Context, r domain.Room) (domain.Room, error) {
	return m.create(ctx, r)
}
func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	return m.getByID(ctx, id)
}
func (m *mockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	return m.list(ctx)
}
func (m *mockRoomRepo) ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockRoomRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}
func (m *mockRoomRepo) Update(ctx context.Context, r domain.Room) (domain.Room, error) {
	return m.update(ctx, r)
}
func (m *mockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.RoomRepo = (*mockRoomRepo)(nil)

type mockOrderRepo struct {
	create       func(ctx context.Context, o domain.Order) (domain.Order, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Order, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error)
	listBetween  func(ctx context.Context, r domain.DateRange) ([]domain.Order, error)
	updateStatus func(ctx context.Context, id uuid.UUID, s domain.OrderStatus) (domain.Order, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockOrderRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	return m.create(ctx, o)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	return m.getByID(ctx, id)
}
func (m *mockOrderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockOrderRepo) ListBetween(ctx context.Context, r domain.DateRange) ([]domain.Order, error) {
	return m.listBetween(ctx, r)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, s domain.OrderStatus) (domain.Order, error) {
	return m.updateStatus(ctx, id, s)
}
func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.OrderRepo = (*mockOrderRepo)(nil)

// ---- fake side-effect sinks ------------------------------------------------

// memCache is an in-memory MonthCache with the same generation scheme as
// cache.Redis. It records invalidations.
type memCache struct {
	mu            sync.Mutex
	gen           int64
	entries       map[string][]byte
	gets, sets    int
	invalidations int
	failReads     bool
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func monthKey(gen int64, year int, month time.Month) string {
	return fmt.Sprintf("g%d:%s", gen, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
}

func (c *memCache) GetMonth(_ context.Context, year int, month time.Month) ([]byte, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failReads {
		return nil, 0, false, errors.New("cache down")
	}
	b, ok := c.entries[monthKey(c.gen, year, month)]
	return b, c.gen, ok, nil
}

func (c *memCache) SetMonth(_ context.Context, gen int64, year int, month time.Month, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[monthKey(gen, year, month)] = payload
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	c.gen++
	return nil
}

var _ service.MonthCache = (*memCache)(nil)

// recordingPublisher captures every published event.
type recordingPublisher struct {
	events []events.BookingEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.BookingEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

var _ service.EventPublisher = (*recordingPublisher)(nil)
