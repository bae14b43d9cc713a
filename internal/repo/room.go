package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// RoomRepo defines the persistence operations for Rooms.
type RoomRepo interface {
	// Create inserts a room and returns the persisted record.
	// Returns domain.ErrConflict if the room number is taken.
	Create(ctx context.Context, room domain.Room) (domain.Room, error)

	// GetByID retrieves a room. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error)

	// List returns every room ordered by floor, then number.
	List(ctx context.Context) ([]domain.Room, error)

	// ListPaged returns one page of rooms matching f and the total match count.
	ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error)

	// Count returns the number of rooms in the hotel.
	Count(ctx context.Context) (int64, error)

	// Update overwrites the mutable fields of a room.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, room domain.Room) (domain.Room, error)

	// Delete removes a room. Bookings that referenced it keep their stay but
	// lose the room assignment.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgRoomRepo is the Postgres implementation of RoomRepo.
type pgRoomRepo struct {
	db db
}

// NewRoomRepo constructs a RoomRepo backed by the provided db connection.
func NewRoomRepo(db db) RoomRepo {
	return &pgRoomRepo{db: db}
}

const roomColumns = `id, number, floor, type, status, rate_cents, created_at, updated_at`

func (r *pgRoomRepo) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	const q = `
		INSERT INTO rooms (number, floor, type, status, rate_cents)
		VALUES (@number, @floor, @type, @status, @rate_cents)
		RETURNING ` + roomColumns

	args := pgx.NamedArgs{
		"number":     room.Number,
		"floor":      room.Floor,
		"type":       string(room.Type),
		"status":     string(room.Status),
		"rate_cents": room.RateCents,
	}
	result, err := scanRoom(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = @id`

	result, err := scanRoom(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.GetByID: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY floor, number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.List: %w", err)
	}
	rooms, err := collect(rows, scanRoom)
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.List: scan: %w", err)
	}
	return rooms, nil
}

// ListPaged filters by floor when f.Floor is set. A NULL @floor matches all rows.
func (r *pgRoomRepo) ListPaged(ctx context.Context, f domain.RoomFilter, p domain.PaginationParams) ([]domain.Room, int64, error) {
	const countQ = `SELECT count(*) FROM rooms WHERE (@floor::int IS NULL OR floor = @floor)`
	const q = `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE (@floor::int IS NULL OR floor = @floor)
		ORDER BY floor, number
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"floor":  f.Floor,
		"limit":  p.Limit,
		"offset": p.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.RoomRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RoomRepo.ListPaged: %w", err)
	}
	rooms, err := collect(rows, scanRoom)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RoomRepo.ListPaged: scan: %w", err)
	}
	return rooms, total, nil
}

func (r *pgRoomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM rooms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.RoomRepo.Count: %w", err)
	}
	return n, nil
}

func (r *pgRoomRepo) Update(ctx context.Context, room domain.Room) (domain.Room, error) {
	const q = `
		UPDATE rooms
		SET number     = @number,
		    floor      = @floor,
		    type       = @type,
		    status     = @status,
		    rate_cents = @rate_cents,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + roomColumns

	args := pgx.NamedArgs{
		"id":         room.ID,
		"number":     room.Number,
		"floor":      room.Floor,
		"type":       string(room.Type),
		"status":     string(room.Status),
		"rate_cents": room.RateCents,
	}
	result, err := scanRoom(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.Update: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RoomRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RoomRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanRoom(s scanner) (domain.Room, error) {
	var (
		rm         domain.Room
		id         pgtype.UUID
		typ, state string
	)
	err := s.Scan(&id, &rm.Number, &rm.Floor, &typ, &state, &rm.RateCents, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return domain.Room{}, err
	}
	rm.ID = uuid.UUID(id.Bytes)
	rm.Type = domain.RoomType(typ)
	rm.Status = domain.RoomStatus(state)
	return rm, nil
}
