package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// BookingRepo defines the persistence operations for Bookings.
type BookingRepo interface {
	// Create inserts a booking and returns the persisted record with id and
	// timestamps populated. Returns domain.ErrConflict if the room is already
	// held on one of the nights, domain.ErrValidation if room_id is unknown.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetByID retrieves a booking. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// List returns every booking ordered by check-in, then creation time.
	List(ctx context.Context) ([]domain.Booking, error)

	// ListPaged returns one page of bookings matching f and the total match count.
	ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error)

	// ListOverlapping returns bookings whose stay intersects [r.From, r.To),
	// ordered by check-in, then creation time.
	ListOverlapping(ctx context.Context, r domain.DateRange) ([]domain.Booking, error)

	// ListByRoom returns every booking assigned to roomID.
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error)

	// UpdateStatus sets the status of a booking and returns the updated record.
	// Returns domain.ErrNotFound if it does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error)

	// ToggleStatus flips pending and confirmed in a single statement and
	// returns the updated record. Returns domain.ErrNotFound if it does not exist.
	ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// Delete removes a booking. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats aggregates counts and revenue over all bookings.
	Stats(ctx context.Context) (domain.BookingStats, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, guest_name, email, phone, room_id, check_in, check_out, status, amount_cents, created_at, updated_at`

func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (guest_name, email, phone, room_id, check_in, check_out, status, amount_cents)
		VALUES (@guest_name, @email, @phone, @room_id, @check_in, @check_out, @status, @amount_cents)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"guest_name":   b.GuestName,
		"email":        b.Email,
		"phone":        b.Phone,
		"room_id":      b.RoomID, // nil becomes NULL
		"check_in":     dateArg(b.CheckIn),
		"check_out":    dateArg(b.CheckOut),
		"status":       string(b.Status),
		"amount_cents": b.AmountCents,
	}
	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY check_in, created_at`

	return r.query(ctx, "List", q, nil)
}

func (r *pgBookingRepo) ListPaged(ctx context.Context, f domain.BookingFilter, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	const countQ = `SELECT count(*) FROM bookings WHERE (@status = '' OR status = @status)`
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE (@status = '' OR status = @status)
		ORDER BY check_in DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"status": string(f.Status),
		"limit":  p.Limit,
		"offset": p.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: count: %w", err)
	}
	bookings, err := r.query(ctx, "ListPaged", q, args)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *pgBookingRepo) ListOverlapping(ctx context.Context, dr domain.DateRange) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE check_in < @to AND check_out > @from
		ORDER BY check_in, created_at`

	return r.query(ctx, "ListOverlapping", q, pgx.NamedArgs{
		"from": dateArg(dr.From),
		"to":   dateArg(dr.To),
	})
}

func (r *pgBookingRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = @room_id
		ORDER BY check_in`

	return r.query(ctx, "ListByRoom", q, pgx.NamedArgs{"room_id": roomID})
}

func (r *pgBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET status     = @status,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + bookingColumns

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.UpdateStatus: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgBookingRepo) ToggleStatus(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET status     = CASE status WHEN @pending THEN @confirmed ELSE @pending END,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + bookingColumns

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":        id,
		"pending":   string(domain.BookingPending),
		"confirmed": string(domain.BookingConfirmed),
	}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.ToggleStatus: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgBookingRepo) Stats(ctx context.Context) (domain.BookingStats, error) {
	const q = `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'confirmed'),
		       coalesce(sum(amount_cents), 0),
		       coalesce(sum(amount_cents) FILTER (WHERE status = 'confirmed'), 0)
		FROM bookings`

	var s domain.BookingStats
	err := r.db.QueryRow(ctx, q).Scan(&s.Total, &s.Pending, &s.Confirmed, &s.RevenueCents, &s.ConfirmedRevenueCents)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("repo.BookingRepo.Stats: %w", err)
	}
	return s, nil
}

// query runs a multi-row booking select and wraps errors with the method name.
func (r *pgBookingRepo) query(ctx context.Context, method, q string, args pgx.NamedArgs) ([]domain.Booking, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.%s: %w", method, err)
	}
	bookings, err := collect(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.%s: scan: %w", method, err)
	}
	return bookings, nil
}

// scanBooking maps a single database row into a domain.Booking, handling the
// nullable room_id and DATE conversions.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b                 domain.Booking
		id, roomID        pgtype.UUID
		checkIn, checkOut pgtype.Date
		status            string
	)
	err := s.Scan(&id, &b.GuestName, &b.Email, &b.Phone, &roomID, &checkIn, &checkOut,
		&status, &b.AmountCents, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	if roomID.Valid {
		rid := uuid.UUID(roomID.Bytes)
		b.RoomID = &rid
	}
	b.CheckIn = dateFrom(checkIn)
	b.CheckOut = dateFrom(checkOut)
	b.Status = domain.BookingStatus(status)
	return b, nil
}
