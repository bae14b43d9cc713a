package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoomType is the category a room is sold as.
type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
)

// Valid reports whether t is a known room type.
func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite:
		return true
	}
	return false
}

// RoomStatus is the housekeeping state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Valid reports whether s is a known room status.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room is a sellable room on a floor. Number is unique across the hotel.
type Room struct {
	ID        uuid.UUID
	Number    string
	Floor     int
	Type      RoomType
	Status    RoomStatus
	RateCents int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomFilter narrows a room listing. Floor nil matches every floor.
type RoomFilter struct {
	Floor *int
}
