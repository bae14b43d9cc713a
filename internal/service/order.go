package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/repo"
)

// OrderService implements business logic for restaurant Orders.
type OrderService struct {
	orders repo.OrderRepo
	now    func() time.Time
}

// NewOrderService constructs an OrderService backed by the provided OrderRepo.
func NewOrderService(orders repo.OrderRepo) *OrderService {
	return &OrderService{orders: orders, now: time.Now}
}

// Create validates and persists a new order. OrderedOn defaults to today
// and Status to open.
func (s *OrderService) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	o.Items = strings.TrimSpace(o.Items)
	if o.OrderedOn.IsZero() {
		o.OrderedOn = domain.DateOf(s.now())
	}
	if o.Status == "" {
		o.Status = domain.OrderOpen
	}

	switch {
	case o.TableNumber < 1:
		return domain.Order{}, fmt.Errorf("%w: table_number must be at least 1", domain.ErrValidation)
	case o.Items == "":
		return domain.Order{}, fmt.Errorf("%w: items is required", domain.ErrValidation)
	case o.AmountCents < 0:
		return domain.Order{}, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	case !o.Status.Valid():
		return domain.Order{}, fmt.Errorf("%w: status must be one of open, served, paid", domain.ErrValidation)
	}

	created, err := s.orders.Create(ctx, o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("service.OrderService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single order.
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("service.OrderService.GetByID: %w", err)
	}
	return o, nil
}

// ListPaged returns one page of orders and the total count.
func (s *OrderService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Order, int64, error) {
	orders, total, err := s.orders.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.OrderService.ListPaged: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

// UpdateStatus moves an order to status.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: status must be one of open, served, paid", domain.ErrValidation)
	}
	o, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("service.OrderService.UpdateStatus: %w", err)
	}
	return o, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.OrderService.Delete: %w", err)
	}
	return nil
}
