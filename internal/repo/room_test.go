package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/internal/domain"
	"github.com/pkordes/hotel-admin/internal/repo"
	"github.com/pkordes/hotel-admin/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t, testutil.NewPool(t))
}

func roomFixture(number string, floor int) domain.Room {
	return domain.Room{
		Number:    number,
		Floor:     floor,
		Type:      domain.RoomDouble,
		Status:    domain.RoomAvailable,
		RateCents: 12000,
	}
}

func TestRoomRepo_CreateAndGet(t *testing.T) {
	r := repo.NewRoomRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, roomFixture("101", 1))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "101", got.Number)
	assert.Equal(t, domain.RoomDouble, got.Type)
	assert.Equal(t, int64(12000), got.RateCents)
}

func TestRoomRepo_Create_DuplicateNumber(t *testing.T) {
	r := repo.NewRoomRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, roomFixture("101", 1))
	require.NoError(t, err)
	_, err = r.Create(ctx, roomFixture("101", 2))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRoomRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewRoomRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomRepo_ListPaged_FilterByFloor(t *testing.T) {
	r := repo.NewRoomRepo(newTestTx(t))
	ctx := context.Background()
	for _, rm := range []domain.Room{roomFixture("101", 1), roomFixture("102", 1), roomFixture("201", 2)} {
		_, err := r.Create(ctx, rm)
		require.NoError(t, err)
	}

	floor := 1
	rooms, total, err := r.ListPaged(ctx, domain.RoomFilter{Floor: &floor}, domain.PaginationParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Number)

	all, total, err := r.ListPaged(ctx, domain.RoomFilter{}, domain.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRoomRepo_UpdateAndDelete(t *testing.T) {
	r := repo.NewRoomRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, roomFixture("301", 3))
	require.NoError(t, err)

	created.Status = domain.RoomMaintenance
	updated, err := r.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, updated.Status)

	require.NoError(t, r.Delete(ctx, created.ID))
	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}
