package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// RoomRequest is the body of POST /rooms and PUT /rooms/{id}.
type RoomRequest struct {
	Number    string `json:"number"`
	Floor     int    `json:"floor"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	RateCents int64  `json:"rate_cents"`
}

// Room is the JSON representation of a room.
type Room struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Floor     int       `json:"floor"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	RateCents int64     `json:"rate_cents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomList is the body of GET /rooms.
type RoomList struct {
	Data       []Room     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateRoom handles POST /rooms.
func (s *Server) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var body RoomRequest
	if err := decodeJSON(r, &body); err != nil {
		requestError(w, err)
		return
	}
	created, err := s.rooms.Create(r.Context(), requestToRoom(uuid.Nil, body))
	if err != nil {
		s.writeServiceError(w, r, err, "room not found")
		return
	}
	writeJSON(w, http.StatusCreated, roomToResponse(created))
}

// ListRooms handles GET /rooms. Supports ?floor=, ?page= and ?limit=.
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		paramError(w, err)
		return
	}
	floor, err := queryInt(r, "floor", false)
	if err != nil {
		paramError(w, err)
		return
	}

	rooms, total, err := s.rooms.ListPaged(r.Context(), domain.RoomFilter{Floor: floor}, params)
	if err != nil {
		s.writeServiceError(w, r, err, "room not found")
		return
	}
	data := make([]Room, len(rooms))
	for i, room := range rooms {
		data[i] = roomToResponse(room)
	}
	writeJSON(w, http.StatusOK, RoomList{Data: data, Pagination: pagination(params, total)})
}

// GetRoom handles GET /rooms/{id}.
func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	room, err := s.rooms.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, roomToResponse(room))
}

// UpdateRoom handles PUT /rooms/{id}.
func (s *Server) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	var body RoomRequest
	if err := decodeJSON(r, &body); err != nil {
		requestError(w, err)
		return
	}
	updated, err := s.rooms.Update(r.Context(), requestToRoom(id, body))
	if err != nil {
		s.writeServiceError(w, r, err, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, roomToResponse(updated))
}

// DeleteRoom handles DELETE /rooms/{id}.
func (s *Server) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		paramError(w, err)
		return
	}
	if err := s.rooms.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "room not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestToRoom builds a domain.Room, preserving the path ID on update.
func requestToRoom(id uuid.UUID, body RoomRequest) domain.Room {
	return domain.Room{
		ID:        id,
		Number:    body.Number,
		Floor:     body.Floor,
		Type:      domain.RoomType(body.Type),
		Status:    domain.RoomStatus(body.Status),
		RateCents: body.RateCents,
	}
}

func roomToResponse(room domain.Room) Room {
	return Room{
		ID:        room.ID,
		Number:    room.Number,
		Floor:     room.Floor,
		Type:      string(room.Type),
		Status:    string(room.Status),
		RateCents: room.RateCents,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
