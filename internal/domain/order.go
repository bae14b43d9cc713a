package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks a restaurant order from kitchen to till.
type OrderStatus string

const (
	OrderOpen   OrderStatus = "open"
	OrderServed OrderStatus = "served"
	OrderPaid   OrderStatus = "paid"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderOpen, OrderServed, OrderPaid:
		return true
	}
	return false
}

// Order is a restaurant order placed at a table.
type Order struct {
	ID          uuid.UUID
	TableNumber int
	Items       string
	AmountCents int64
	Status      OrderStatus
	OrderedOn   Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
