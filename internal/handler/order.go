package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// OrderRequest is the body of POST /restaurant/orders.
// OrderedOn defaults to today when omitted.
type OrderRequest struct {
	TableNumber int         `json:"table_number"`
	Items       string      `json:"items"`
	AmountCents int64       `json:"amount_cents"`
	Status      string      `json:"status"`
	OrderedOn   domain.Date `json:"ordered_on"`
}

// Order is the JSON representation of a restaurant order.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	TableNumber int         `json:"table_number"`
	Items       string      `json:"items"`
	AmountCents int64       `json:"amount_cents"`
	Status      string      `json:"status"`
	OrderedOn   domain.Date `json:"ordered_on"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderList is the body of GET /restaurant/orders.
type OrderList struct {
	Data       []Order    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateOrder handles POST /restaurant/orders.
func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body OrderRequest
	if err := decodeJSON(r, &body); err != nil {
		requestError(w, err)
		return
	}
	created, err := s.orders.Create(r.Context(), domain.Order{
		TableNumber: body.TableNumber,
		Items:       body.Items,
		AmountCents: body.AmountCents,
		Status:      domain.OrderStatus(body.Status),
		OrderedOn:   body.OrderedOn,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "order not found")
		return
	}
	writeJSON(w, http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /restaurant/orders.
func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		paramError(w, err)
		return
	}
	orders, total, err := s.orders.ListPaged(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err, "order not found")
		return
	}
	data := make([]Order, len(orders))
	for i, o := range orders {
		data[i] = orderToResponse(o)
	}
	writeJSON(w, http.StatusOK, OrderList{Data: data, Pagination: pagination(params, total)})
}

// GetOrder handles GET /restaurant/orders/{id}.
func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	o, err := s.orders.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, orderToResponse(o))
}

// UpdateOrderStatus handles PUT /restaurant/orders/{id}/status.
func (s *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
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
	updated, err := s.orders.UpdateStatus(r.Context(), id, domain.OrderStatus(body.Status))
	if err != nil {
		s.writeServiceError(w, r, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /restaurant/orders/{id}.
func (s *Server) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	if err := s.orders.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "order not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func orderToResponse(o domain.Order) Order {
	return Order{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		Items:       o.Items,
		AmountCents: o.AmountCents,
		Status:      string(o.Status),
		OrderedOn:   o.OrderedOn,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
