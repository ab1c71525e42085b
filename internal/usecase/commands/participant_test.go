//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/participant"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParticipantCommands_Create(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().WithID(7).BuildStored()

	t.Run("registered user", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		gomock.InOrder(
			m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil),
			m.users.EXPECT().FindByID(gomock.Any(), int64(2)).Return(builder.NewUserBuilder().WithID(2).BuildStored(), nil),
			m.participants.EXPECT().UserExists(gomock.Any(), int64(7), int64(2)).Return(false, nil),
			m.participants.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(participant.ReconstructParticipant(11, 7, ptr.Of(int64(2)), nil, now), nil),
		)

		got, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, UserID: ptr.Of(int64(2))}, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID())
	})

	t.Run("manual name is trimmed", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil)
		m.participants.EXPECT().NameExists(gomock.Any(), int64(7), "Guest").Return(false, nil)
		m.participants.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *participant.Participant) (*participant.Participant, error) {
				assert.Equal(t, ptr.Of("Guest"), p.ManualName())
				return p, nil
			})

		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, ManualName: ptr.Of(" Guest ")}, owner)
		require.NoError(t, err)
	})

	t.Run("both identities never open a transaction", func(t *testing.T) {
		m := newUoWMocks(t)
		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{
			ReservationID: 7,
			UserID:        ptr.Of(int64(2)),
			ManualName:    ptr.Of("Guest"),
		}, owner)
		require.ErrorIs(t, err, participant.ErrIdentityRequired)
	})

	t.Run("deleted reservation", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(nil, repoErr(infra.KindNotFound))

		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, ManualName: ptr.Of("Guest")}, owner)
		require.ErrorIs(t, err, reservation.ErrNotFound)
	})

	t.Run("not the creator", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil)

		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, ManualName: ptr.Of("Guest")}, "other@example.com")
		require.ErrorIs(t, err, reservation.ErrNotCreator)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil)
		m.users.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, repoErr(infra.KindNotFound))

		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, UserID: ptr.Of(int64(2))}, owner)
		require.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("duplicates", func(t *testing.T) {
		m := newUoWMocks(t)
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, m.tx)
			}).Times(2)
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil).Times(2)
		m.users.EXPECT().FindByID(gomock.Any(), int64(2)).Return(builder.NewUserBuilder().WithID(2).BuildStored(), nil)
		m.participants.EXPECT().UserExists(gomock.Any(), int64(7), int64(2)).Return(true, nil)
		m.participants.EXPECT().NameExists(gomock.Any(), int64(7), "Guest").Return(true, nil)

		cmds := commands.NewParticipantCommands(m.uow)
		_, err := cmds.Create(ctx, commands.CreateParticipantInput{ReservationID: 7, UserID: ptr.Of(int64(2))}, owner)
		require.ErrorIs(t, err, participant.ErrDuplicateUser)
		_, err = cmds.Create(ctx, commands.CreateParticipantInput{ReservationID: 7, ManualName: ptr.Of("Guest")}, owner)
		require.ErrorIs(t, err, participant.ErrDuplicateName)
	})

	t.Run("unique violation maps by constraint", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(res, nil)
		m.participants.EXPECT().NameExists(gomock.Any(), int64(7), "Guest").Return(false, nil)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_participants_reservation_name"}
		m.participants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("create participant", pgErr))

		_, err := commands.NewParticipantCommands(m.uow).Create(ctx, commands.CreateParticipantInput{ReservationID: 7, ManualName: ptr.Of("Guest")}, owner)
		require.ErrorIs(t, err, participant.ErrDuplicateName)
	})
}

func TestParticipantCommands_Delete(t *testing.T) {
	ctx := context.Background()
	stored := participant.ReconstructParticipant(11, 7, nil, ptr.Of("Guest"), now)

	t.Run("removes", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.participants.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(builder.NewReservationBuilder().WithID(7).BuildStored(), nil)
		m.participants.EXPECT().Delete(gomock.Any(), int64(11)).Return(true, nil)

		deleted, err := commands.NewParticipantCommands(m.uow).Delete(ctx, 11, owner)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing participant reports false", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.participants.EXPECT().FindByID(gomock.Any(), int64(11)).Return(nil, repoErr(infra.KindNotFound))

		deleted, err := commands.NewParticipantCommands(m.uow).Delete(ctx, 11, owner)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("reservation already deleted", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.participants.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(nil, repoErr(infra.KindNotFound))
		m.participants.EXPECT().Delete(gomock.Any(), int64(11)).Return(true, nil)

		deleted, err := commands.NewParticipantCommands(m.uow).Delete(ctx, 11, "other@example.com")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("not the creator", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.participants.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(builder.NewReservationBuilder().WithID(7).BuildStored(), nil)

		_, err := commands.NewParticipantCommands(m.uow).Delete(ctx, 11, "other@example.com")
		require.ErrorIs(t, err, reservation.ErrNotCreator)
	})
}

func TestParticipantCommands_DeleteByReservation(t *testing.T) {
	m := newUoWMocks(t)
	m.expectTx()
	m.reservations.EXPECT().FindByID(gomock.Any(), int64(7), shared.VisibleOnly).Return(builder.NewReservationBuilder().WithID(7).BuildStored(), nil)
	m.participants.EXPECT().DeleteByReservation(gomock.Any(), int64(7)).Return(int64(3), nil)

	count, err := commands.NewParticipantCommands(m.uow).DeleteByReservation(context.Background(), 7, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
