//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().NameExists(gomock.Any(), "Building A", nil).Return(false, nil)
		m.locations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, loc *location.Location) (*location.Location, error) {
				assert.True(t, loc.Active())
				return builder.NewLocationBuilder().WithID(4).BuildStored(), nil
			})

		got, err := commands.NewLocationCommands(m.uow, m.clock).Create(ctx, commands.CreateLocationInput{Name: " Building A "})
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID())
	})

	t.Run("invalid name never opens a transaction", func(t *testing.T) {
		m := newUoWMocks(t)
		_, err := commands.NewLocationCommands(m.uow, m.clock).Create(ctx, commands.CreateLocationInput{Name: "  "})
		require.ErrorIs(t, err, location.ErrInvalidName)
	})

	t.Run("name taken", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().NameExists(gomock.Any(), "Building A", nil).Return(true, nil)

		_, err := commands.NewLocationCommands(m.uow, m.clock).Create(ctx, commands.CreateLocationInput{Name: "Building A"})
		require.ErrorIs(t, err, location.ErrNameTaken)
	})

	t.Run("unique violation after check", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().NameExists(gomock.Any(), "Building A", nil).Return(false, nil)
		m.locations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repoErr(infra.KindDuplicateKey))

		_, err := commands.NewLocationCommands(m.uow, m.clock).Create(ctx, commands.CreateLocationInput{Name: "Building A"})
		require.ErrorIs(t, err, location.ErrNameTaken)
	})
}

func TestLocationCommands_Update(t *testing.T) {
	ctx := context.Background()
	echo := func(_ context.Context, loc *location.Location) (*location.Location, error) { return loc, nil }

	t.Run("unchanged name skips uniqueness check", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().FindByID(gomock.Any(), int64(1), shared.VisibleOnly).Return(builder.NewLocationBuilder().BuildStored(), nil)
		m.locations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echo)

		got, err := commands.NewLocationCommands(m.uow, m.clock).Update(ctx, 1, commands.UpdateLocationInput{
			Name:   ptr.Of("Building A"),
			Active: ptr.Of(false),
		})
		require.NoError(t, err)
		assert.False(t, got.Active())
	})

	t.Run("rename excludes itself", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().FindByID(gomock.Any(), int64(1), shared.VisibleOnly).Return(builder.NewLocationBuilder().BuildStored(), nil)
		m.locations.EXPECT().NameExists(gomock.Any(), "Building B", ptr.Of(int64(1))).Return(true, nil)

		_, err := commands.NewLocationCommands(m.uow, m.clock).Update(ctx, 1, commands.UpdateLocationInput{Name: ptr.Of("Building B")})
		require.ErrorIs(t, err, location.ErrNameTaken)
	})

	t.Run("deleted location", func(t *testing.T) {
		m := newUoWMocks(t)
		m.expectTx()
		m.locations.EXPECT().FindByID(gomock.Any(), int64(1), shared.VisibleOnly).Return(nil, repoErr(infra.KindNotFound))

		_, err := commands.NewLocationCommands(m.uow, m.clock).Update(ctx, 1, commands.UpdateLocationInput{})
		require.ErrorIs(t, err, location.ErrNotFound)
	})
}

func TestLocationCommands_Delete(t *testing.T) {
	ctx := context.Background()

	m := newUoWMocks(t)
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(2)
	gomock.InOrder(
		m.locations.EXPECT().SoftDelete(gomock.Any(), int64(1), now).Return(true, nil),
		m.locations.EXPECT().SoftDelete(gomock.Any(), int64(1), now).Return(false, nil),
	)

	cmds := commands.NewLocationCommands(m.uow, m.clock)
	require.NoError(t, cmds.Delete(ctx, 1))
	require.ErrorIs(t, cmds.Delete(ctx, 1), location.ErrNotFound)
}
