package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/cache"
	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/repo"
)

// RoomService implements business logic for Room operations.
type RoomService struct {
	rooms repo.RoomRepo
	cache MonthCache
	log   *slog.Logger
}

// NewRoomService constructs a RoomService. months may be nil.
// Deleting a room unassigns it from bookings, so cached months are dropped.
func NewRoomService(rooms repo.RoomRepo, months MonthCache, log *slog.Logger) *RoomService {
	if months == nil {
		months = cache.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &RoomService{rooms: rooms, cache: months, log: log}
}

// Create validates and persists a new room. Status defaults to available.
func (s *RoomService) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	room = normalizeRoom(room)
	if err := validateRoom(room); err != nil {
		return domain.Room{}, err
	}
	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single room.
func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.GetByID: %w", err)
	}
	return room, nil
}

// ListPaged returns one page of rooms and the total count.
func (s *RoomService) ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error) {
	rooms, total, err := s.rooms.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.RoomService.ListPaged: %w", err)
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, total, nil
}

// Update validates and persists changes to an existing room.
func (s *RoomService) Update(ctx context.Context, room domain.Room) (domain.Room, error) {
	room = normalizeRoom(room)
	if err := validateRoom(room); err != nil {
		return domain.Room{}, err
	}
	updated, err := s.rooms.Update(ctx, room)
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a room.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.RoomService.Delete: %w", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "calendar cache invalidation failed", "error", err, "room_id", id)
	}
	return nil
}

func normalizeRoom(room domain.Room) domain.Room {
	room.Number = strings.TrimSpace(room.Number)
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	return room
}

// validateRoom enforces business rules common to both Create and Update.
func validateRoom(room domain.Room) error {
	switch {
	case room.Number == "":
		return fmt.Errorf("%w: number is required", domain.ErrValidation)
	case room.Floor < 0:
		return fmt.Errorf("%w: floor must not be negative", domain.ErrValidation)
	case !room.Type.Valid():
		return fmt.Errorf("%w: type must be one of single, double, suite", domain.ErrValidation)
	case !room.Status.Valid():
		return fmt.Errorf("%w: status must be one of available, occupied, maintenance", domain.ErrValidation)
	case room.RateCents < 0:
		return fmt.Errorf("%w: rate must not be negative", domain.ErrValidation)
	}
	return nil
}
