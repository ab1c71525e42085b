//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

func slot(t *testing.T, from, to time.Duration) reservation.TimeSlot {
	t.Helper()
	s, err := reservation.NewTimeSlot(base.Add(from), base.Add(to))
	require.NoError(t, err)
	return s
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("end after start OK", func(t *testing.T) {
		s, err := reservation.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, s.Duration())
	})

	t.Run("converts to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		s, err := reservation.NewTimeSlot(base.In(tokyo), base.Add(time.Hour).In(tokyo))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, s.Start().Location())
		assert.True(t, base.Equal(s.Start()))
	})

	t.Run("end equal to start NG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
		assert.Equal(t, errs.KindInvalidTemporal, errs.KindOf(err))
	})

	t.Run("end before start NG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base.Add(-time.Minute))
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})
}

func TestTimeSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name  string
		other reservation.TimeSlot
		want  bool
	}{
		{name: "identical", other: slot(t, 0, time.Hour), want: true},
		{name: "partial overlap at start", other: slot(t, -30*time.Minute, 30*time.Minute), want: true},
		{name: "partial overlap at end", other: slot(t, 30*time.Minute, 90*time.Minute), want: true},
		{name: "contained", other: slot(t, 15*time.Minute, 45*time.Minute), want: true},
		{name: "containing", other: slot(t, -time.Hour, 2*time.Hour), want: true},
		{name: "adjacent before", other: slot(t, -time.Hour, 0), want: false},
		{name: "adjacent after", other: slot(t, time.Hour, 2*time.Hour), want: false},
		{name: "disjoint", other: slot(t, 3*time.Hour, 4*time.Hour), want: false},
	}

	current := slot(t, 0, time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, current.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(current))
		})
	}
}

func TestTimeSlot_EnsureNotPast(t *testing.T) {
	s := slot(t, 0, time.Hour)

	require.NoError(t, s.EnsureNotPast(base))
	require.NoError(t, s.EnsureNotPast(base.Add(-time.Second)))

	err := s.EnsureNotPast(base.Add(time.Second))
	require.ErrorIs(t, err, reservation.ErrStartInPast)
	assert.Equal(t, errs.KindInvalidTemporal, errs.KindOf(err))
}

func TestNewCoffee(t *testing.T) {
	tests := []struct {
		name         string
		requested    bool
		quantity     *int
		wantQuantity *int
		errIs        error
	}{
		{name: "not requested OK", requested: false},
		{name: "not requested drops quantity", requested: false, quantity: ptr.Of(4)},
		{name: "requested with quantity OK", requested: true, quantity: ptr.Of(4), wantQuantity: ptr.Of(4)},
		{name: "requested without quantity NG", requested: true, errIs: reservation.ErrInvalidCoffee},
		{name: "requested with zero NG", requested: true, quantity: ptr.Of(0), errIs: reservation.ErrInvalidCoffee},
		{name: "requested with negative NG", requested: true, quantity: ptr.Of(-1), errIs: reservation.ErrInvalidCoffee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := reservation.NewCoffee(tt.requested, tt.quantity)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, errs.KindInvalidCoffee, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.requested, c.Requested())
			assert.Equal(t, tt.wantQuantity, c.Quantity())
		})
	}
}

func TestNormalizeResponsible(t *testing.T) {
	n, err := reservation.NormalizeResponsible("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", n)

	_, err = reservation.NormalizeResponsible(" ")
	require.ErrorIs(t, err, reservation.ErrInvalidResponsible)

	_, err = reservation.NormalizeResponsible(strings.Repeat("a", reservation.MaxResponsibleLength+1))
	require.ErrorIs(t, err, reservation.ErrInvalidResponsible)
}
