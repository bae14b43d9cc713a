package calendar_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/internal/calendar"
	"github.com/pkordes/hotel-admin/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(y, m, d)
}

func bookingFixture(guest string, in, out domain.Date) domain.Booking {
	return domain.Booking{
		ID:        uuid.New(),
		GuestName: guest,
		CheckIn:   in,
		CheckOut:  out,
		Status:    domain.BookingPending,
	}
}

// ---- OccupantsOn -----------------------------------------------------------

// TestOccupantsOn_halfOpenInterval walks every day around a stay and checks
// membership matches CheckIn <= d < CheckOut.
func TestOccupantsOn_halfOpenInterval(t *testing.T) {
	b := bookingFixture("Ada", day(2026, 3, 30), day(2026, 4, 2))

	for d := day(2026, 3, 25); d.Before(day(2026, 4, 7)); d = d.AddDays(1) {
		want := !d.Before(b.CheckIn) && d.Before(b.CheckOut)
		got := calendar.OccupantsOn(d, []domain.Booking{b})
		if want {
			assert.Len(t, got, 1, "expected %s to be occupied", d)
		} else {
			assert.Empty(t, got, "expected %s to be free", d)
		}
	}
}

func TestOccupantsOn_concreteScenario(t *testing.T) {
	b := bookingFixture("Grace", day(2026, 1, 15), day(2026, 1, 18))
	all := []domain.Booking{b}

	for _, d := range []domain.Date{day(2026, 1, 15), day(2026, 1, 16), day(2026, 1, 17)} {
		got := calendar.OccupantsOn(d, all)
		require.Len(t, got, 1, "day %s", d)
		assert.Equal(t, b.ID, got[0].ID)
	}
	assert.Empty(t, calendar.OccupantsOn(day(2026, 1, 18), all), "check-out day is vacated")

	assert.True(t, calendar.IsCheckInDay(day(2026, 1, 15), b))
	assert.True(t, calendar.IsLastOccupiedDay(day(2026, 1, 17), b))
}

func TestOccupantsOn_preservesInputOrder(t *testing.T) {
	d := day(2026, 5, 10)
	zed := bookingFixture("Zed", day(2026, 5, 9), day(2026, 5, 12))
	amy := bookingFixture("Amy", day(2026, 5, 10), day(2026, 5, 11))
	gone := bookingFixture("Gone", day(2026, 5, 1), day(2026, 5, 10))
	bob := bookingFixture("Bob", day(2026, 5, 8), day(2026, 5, 20))

	got := calendar.OccupantsOn(d, []domain.Booking{zed, amy, gone, bob})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Zed", "Amy", "Bob"}, []string{got[0].GuestName, got[1].GuestName, got[2].GuestName})
}

func TestOccupantsOn_zeroDateIsEmpty(t *testing.T) {
	b := bookingFixture("Ada", day(2026, 1, 1), day(2026, 1, 5))

	got := calendar.OccupantsOn(domain.Date{}, []domain.Booking{b})

	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- IsCheckInDay / IsLastOccupiedDay -------------------------------------

func TestIsCheckInDay_onlyOnCheckIn(t *testing.T) {
	b := bookingFixture("Ada", day(2026, 2, 26), day(2026, 3, 3))

	assert.True(t, calendar.IsCheckInDay(b.CheckIn, b))
	for d := b.CheckIn.AddDays(-3); d.Before(b.CheckOut.AddDays(3)); d = d.AddDays(1) {
		if d == b.CheckIn {
			continue
		}
		assert.False(t, calendar.IsCheckInDay(d, b), "day %s", d)
	}
	assert.False(t, calendar.IsCheckInDay(domain.Date{}, b))
}

func TestIsLastOccupiedDay_multiDayStay(t *testing.T) {
	b := bookingFixture("Ada", day(2026, 2, 27), day(2026, 3, 1))

	assert.True(t, calendar.IsLastOccupiedDay(day(2026, 2, 28), b), "crosses month end")
	assert.False(t, calendar.IsLastOccupiedDay(b.CheckOut, b))
	assert.False(t, calendar.IsLastOccupiedDay(b.CheckIn, b))
	assert.Empty(t, calendar.OccupantsOn(b.CheckOut, []domain.Booking{b}))
}

func TestMarkerFor(t *testing.T) {
	long := bookingFixture("Long", day(2026, 1, 10), day(2026, 1, 14))
	single := bookingFixture("Single", day(2026, 1, 10), day(2026, 1, 11))

	assert.Equal(t, calendar.MarkerCheckIn, calendar.MarkerFor(day(2026, 1, 10), long))
	assert.Equal(t, calendar.MarkerPassThrough, calendar.MarkerFor(day(2026, 1, 11), long))
	assert.Equal(t, calendar.MarkerPassThrough, calendar.MarkerFor(day(2026, 1, 12), long))
	assert.Equal(t, calendar.MarkerLastNight, calendar.MarkerFor(day(2026, 1, 13), long))
	assert.Equal(t, calendar.MarkerSingleNight, calendar.MarkerFor(day(2026, 1, 10), single))
}

// ---- AssertNoConflict ------------------------------------------------------

func TestAssertNoConflict(t *testing.T) {
	room := uuid.New()
	other := uuid.New()
	existing := bookingFixture("Ada", day(2026, 6, 10), day(2026, 6, 15))
	existing.RoomID = &room
	elsewhere := bookingFixture("Bob", day(2026, 6, 1), day(2026, 6, 30))
	elsewhere.RoomID = &other
	unassigned := bookingFixture("Cy", day(2026, 6, 1), day(2026, 6, 30))
	all := []domain.Booking{existing, elsewhere, unassigned}

	tests := []struct {
		name     string
		roomID   *uuid.UUID
		in, out  domain.Date
		conflict bool
	}{
		{"no room never conflicts", nil, day(2026, 6, 11), day(2026, 6, 12), false},
		{"ends on existing check-in", &room, day(2026, 6, 5), day(2026, 6, 10), false},
		{"starts on existing check-out", &room, day(2026, 6, 15), day(2026, 6, 18), false},
		{"overlaps start", &room, day(2026, 6, 8), day(2026, 6, 11), true},
		{"inside", &room, day(2026, 6, 12), day(2026, 6, 13), true},
		{"covers", &room, day(2026, 6, 1), day(2026, 6, 30), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := calendar.AssertNoConflict(tc.roomID, tc.in, tc.out, all)
			if tc.conflict {
				assert.ErrorIs(t, err, domain.ErrConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
