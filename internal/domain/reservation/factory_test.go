//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placement(t *testing.T) reservation.Placement {
	t.Helper()
	p, err := reservation.NewPlacement(
		builder.NewLocationBuilder().WithID(1).BuildStored(),
		builder.NewRoomBuilder().WithID(4).WithLocationID(1).BuildStored(),
	)
	require.NoError(t, err)
	return p
}

func TestNewPlacement(t *testing.T) {
	t.Run("captures names", func(t *testing.T) {
		p := placement(t)
		assert.Equal(t, reservation.Placement{LocationID: 1, LocationName: "Building A", RoomID: 4, RoomName: "Room 101"}, p)
	})

	t.Run("room in another location NG", func(t *testing.T) {
		loc := builder.NewLocationBuilder().WithID(2).BuildStored()
		rm := builder.NewRoomBuilder().WithLocationID(1).BuildStored()

		_, err := reservation.NewPlacement(loc, rm)
		require.ErrorIs(t, err, reservation.ErrRoomLocationMismatch)
		assert.Equal(t, errs.KindInvalidRelationship, errs.KindOf(err))
	})
}

func TestFactory_CreateReservation(t *testing.T) {
	factory := reservation.NewFactory(clock.NewMockClock(base.Add(-time.Hour)))
	creator := ptr.Of("owner@example.com")

	t.Run("builds an unsaved reservation", func(t *testing.T) {
		res, err := factory.CreateReservation(placement(t), slot(t, 0, time.Hour), " Alice ", reservation.NoCoffee(), nil, creator)
		require.NoError(t, err)
		assert.Zero(t, res.ID())
		assert.Equal(t, "Alice", res.Responsible())
		assert.Equal(t, "Room 101", res.RoomName())
		assert.Equal(t, creator, res.CreatedBy())
	})

	t.Run("start in the past NG", func(t *testing.T) {
		_, err := factory.CreateReservation(placement(t), slot(t, -2*time.Hour, 0), "Alice", reservation.NoCoffee(), nil, creator)
		require.ErrorIs(t, err, reservation.ErrStartInPast)
	})

	t.Run("start equal to now OK", func(t *testing.T) {
		_, err := factory.CreateReservation(placement(t), slot(t, -time.Hour, 0), "Alice", reservation.NoCoffee(), nil, creator)
		require.NoError(t, err)
	})

	t.Run("blank responsible NG", func(t *testing.T) {
		_, err := factory.CreateReservation(placement(t), slot(t, 0, time.Hour), "", reservation.NoCoffee(), nil, creator)
		require.ErrorIs(t, err, reservation.ErrInvalidResponsible)
	})

	t.Run("long description NG", func(t *testing.T) {
		desc := strings.Repeat("d", reservation.MaxDescriptionLength+1)
		_, err := factory.CreateReservation(placement(t), slot(t, 0, time.Hour), "Alice", reservation.NoCoffee(), &desc, creator)
		require.ErrorIs(t, err, reservation.ErrInvalidDescription)
	})
}

func TestReservation_AuthorizeChange(t *testing.T) {
	owned := builder.NewReservationBuilder().BuildStored()
	require.NoError(t, owned.AuthorizeChange("owner@example.com"))

	err := owned.AuthorizeChange("other@example.com")
	require.ErrorIs(t, err, reservation.ErrNotCreator)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))

	legacy := builder.NewReservationBuilder().WithCreatedBy(nil).BuildStored()
	require.NoError(t, legacy.AuthorizeChange("anyone@example.com"))
}
