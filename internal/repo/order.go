package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// OrderRepo defines the persistence operations for restaurant Orders.
type OrderRepo interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error)

	// ListPaged returns one page of orders, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error)

	// ListBetween returns orders placed on a day in [r.From, r.To), oldest first.
	// A zero r.From or r.To leaves that side of the range open.
	ListBetween(ctx context.Context, r domain.DateRange) ([]domain.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgOrderRepo is the Postgres implementation of OrderRepo.
type pgOrderRepo struct {
	db db
}

// NewOrderRepo constructs an OrderRepo backed by the provided db connection.
func NewOrderRepo(db db) OrderRepo {
	return &pgOrderRepo{db: db}
}

const orderColumns = `id, table_number, items, amount_cents, status, ordered_on, created_at, updated_at`

func (r *pgOrderRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	const q = `
		INSERT INTO restaurant_orders (table_number, items, amount_cents, status, ordered_on)
		VALUES (@table_number, @items, @amount_cents, @status, @ordered_on)
		RETURNING ` + orderColumns

	args := pgx.NamedArgs{
		"table_number": o.TableNumber,
		"items":        o.Items,
		"amount_cents": o.AmountCents,
		"status":       string(o.Status),
		"ordered_on":   dateArg(o.OrderedOn),
	}
	result, err := scanOrder(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.OrderRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM restaurant_orders WHERE id = @id`

	result, err := scanOrder(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.OrderRepo.GetByID: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgOrderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error) {
	const q = `
		SELECT ` + orderColumns + `
		FROM restaurant_orders
		ORDER BY ordered_on DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM restaurant_orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: %w", err)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: scan: %w", err)
	}
	return orders, total, nil
}

func (r *pgOrderRepo) ListBetween(ctx context.Context, dr domain.DateRange) ([]domain.Order, error) {
	const q = `
		SELECT ` + orderColumns + `
		FROM restaurant_orders
		WHERE (@from::date IS NULL OR ordered_on >= @from)
		  AND (@to::date IS NULL OR ordered_on < @to)
		ORDER BY ordered_on, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": dateArg(dr.From), "to": dateArg(dr.To)})
	if err != nil {
		return nil, fmt.Errorf("repo.OrderRepo.ListBetween: %w", err)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("repo.OrderRepo.ListBetween: scan: %w", err)
	}
	return orders, nil
}

func (r *pgOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	const q = `
		UPDATE restaurant_orders
		SET status     = @status,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + orderColumns

	result, err := scanOrder(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.OrderRepo.UpdateStatus: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurant_orders WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.OrderRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.OrderRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanOrder(s scanner) (domain.Order, error) {
	var (
		o         domain.Order
		id        pgtype.UUID
		status    string
		orderedOn pgtype.Date
	)
	err := s.Scan(&id, &o.TableNumber, &o.Items, &o.AmountCents, &status, &orderedOn, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = uuid.UUID(id.Bytes)
	o.Status = domain.OrderStatus(status)
	o.OrderedOn = dateFrom(orderedOn)
	return o, nil
}
