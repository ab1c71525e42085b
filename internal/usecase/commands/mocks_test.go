//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/usecase/shared"
	sharedmock "room-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// now sits one day before the reservations the builders produce.
var now = time.Date(2029, 12, 31, 9, 0, 0, 0, time.UTC)

type uowMocks struct {
	clock        *clock.MockClock
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	locations    *sharedmock.MockLocationRepository
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
	participants *sharedmock.MockParticipantRepository
	users        *sharedmock.MockUserRepository
}

func newUoWMocks(t *testing.T) *uowMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &uowMocks{
		clock:        clock.NewMockClock(now),
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		locations:    sharedmock.NewMockLocationRepository(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		participants: sharedmock.NewMockParticipantRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
	}
	m.tx.EXPECT().Locations().Return(m.locations).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Participants().Return(m.participants).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

// expectTx runs the transaction body once against the mocked repositories.
func (m *uowMocks) expectTx() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("repository call", assert.AnError, kind)
}
