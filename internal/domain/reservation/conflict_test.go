//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booked(id, roomID int64, from, to time.Duration) *builder.ReservationBuilder {
	return builder.NewReservationBuilder().
		WithID(id).
		WithRoomID(roomID).
		WithSlot(base.Add(from), to-from)
}

func TestFindConflict(t *testing.T) {
	existing := []*reservation.Reservation{
		booked(5, 1, 0, time.Hour).BuildStored(),
		booked(3, 1, 30*time.Minute, 90*time.Minute).BuildStored(),
		booked(2, 2, 0, time.Hour).BuildStored(),
		booked(1, 1, 0, time.Hour).AsDeleted().BuildStored(),
		booked(9, 1, 2*time.Hour, 3*time.Hour).BuildStored(),
	}

	tests := []struct {
		name    string
		roomID  int64
		slot    reservation.TimeSlot
		exclude *int64
		wantID  *int64
	}{
		{name: "lowest id among overlaps", roomID: 1, slot: slot(t, 45*time.Minute, 75*time.Minute), wantID: ptr.Of(int64(3))},
		{name: "only one overlap", roomID: 1, slot: slot(t, 0, 20*time.Minute), wantID: ptr.Of(int64(5))},
		{name: "adjacent slot is free", roomID: 1, slot: slot(t, 90*time.Minute, 2*time.Hour)},
		{name: "other room ignored", roomID: 2, slot: slot(t, 2*time.Hour, 3*time.Hour)},
		{name: "excluded reservation ignored", roomID: 1, slot: slot(t, 2*time.Hour, 3*time.Hour), exclude: ptr.Of(int64(9))},
		{name: "exclude keeps other overlaps", roomID: 1, slot: slot(t, 0, 20*time.Minute), exclude: ptr.Of(int64(5))},
		{name: "empty room is free", roomID: 3, slot: slot(t, 0, time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.FindConflict(existing, tt.roomID, tt.slot, tt.exclude)
			assert.Equal(t, tt.wantID != nil, reservation.HasConflict(existing, tt.roomID, tt.slot, tt.exclude))
			if tt.wantID == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.wantID, got.ID())
		})
	}
}

func TestFindConflict_DeletedOverlapOnly(t *testing.T) {
	existing := []*reservation.Reservation{
		booked(1, 1, 0, time.Hour).AsDeleted().BuildStored(),
	}
	assert.Nil(t, reservation.FindConflict(existing, 1, slot(t, 0, time.Hour), nil))
}

func TestFindConflict_Empty(t *testing.T) {
	assert.Nil(t, reservation.FindConflict(nil, 1, slot(t, 0, time.Hour), nil))
	assert.False(t, reservation.HasConflict(nil, 1, slot(t, 0, time.Hour), nil))
}
