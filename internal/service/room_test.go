package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/service"
)

func TestRoomService_Create_DefaultsAndTrims(t *testing.T) {
	var stored domain.Room
	svc := service.NewRoomService(&mockRoomRepo{
		create: func(_ context.Context, r domain.Room) (domain.Room, error) {
			stored = r
			r.ID = uuid.New()
			return r, nil
		},
	}, nil, nil)

	got, err := svc.Create(context.Background(), domain.Room{
		Number: "  101 ", Floor: 1, Type: domain.RoomDouble, RateCents: 12000,
	})

	require.NoError(t, err)
	assert.Equal(t, "101", stored.Number)
	assert.Equal(t, domain.RoomAvailable, got.Status)
}

func TestRoomService_Create_ValidationFailures(t *testing.T) {
	valid := domain.Room{Number: "101", Floor: 1, Type: domain.RoomSingle}
	tests := []struct {
		name   string
		mutate func(r *domain.Room)
	}{
		{"blank number", func(r *domain.Room) { r.Number = " " }},
		{"negative floor", func(r *domain.Room) { r.Floor = -1 }},
		{"unknown type", func(r *domain.Room) { r.Type = "penthouse" }},
		{"unknown status", func(r *domain.Room) { r.Status = "dirty" }},
		{"negative rate", func(r *domain.Room) { r.RateCents = -5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewRoomService(&mockRoomRepo{}, nil, nil)
			r := valid
			tc.mutate(&r)

			_, err := svc.Create(context.Background(), r)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRoomService_Update_NotFound(t *testing.T) {
	svc := service.NewRoomService(&mockRoomRepo{
		update: func(_ context.Context, _ domain.Room) (domain.Room, error) {
			return domain.Room{}, domain.ErrNotFound
		},
	}, nil, nil)

	_, err := svc.Update(context.Background(), domain.Room{ID: uuid.New(), Number: "1", Type: domain.RoomSuite})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomService_Delete_InvalidatesCalendar(t *testing.T) {
	c := newMemCache()
	svc := service.NewRoomService(&mockRoomRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}, c, nil)

	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
	assert.Equal(t, 1, c.invalidations)
}

func TestRoomService_ListPaged_PassesFilter(t *testing.T) {
	floor := 3
	var gotFilter domain.RoomFilter
	svc := service.NewRoomService(&mockRoomRepo{
		listPaged: func(_ context.Context, f domain.RoomFilter, _ domain.PaginationParams) ([]domain.Room, int64, error) {
			gotFilter = f
			return nil, 0, nil
		},
	}, nil, nil)

	rooms, _, err := svc.ListPaged(context.Background(), domain.RoomFilter{Floor: &floor}, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	require.NotNil(t, gotFilter.Floor)
	assert.Equal(t, 3, *gotFilter.Floor)
}
