//go:build unit

package room_test

import (
	"strings"
	"testing"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.RoomBuilder)
		errIs  error
	}{
		{name: "defaults OK", mutate: func(*builder.RoomBuilder) {}},
		{name: "no capacity OK", mutate: func(b *builder.RoomBuilder) { b.Capacity = nil }},
		{name: "blank name NG", mutate: func(b *builder.RoomBuilder) { b.WithName("") }, errIs: room.ErrInvalidName},
		{name: "zero capacity NG", mutate: func(b *builder.RoomBuilder) { b.Capacity = ptr.Of(0) }, errIs: room.ErrInvalidCapacity},
		{name: "negative capacity NG", mutate: func(b *builder.RoomBuilder) { b.Capacity = ptr.Of(-3) }, errIs: room.ErrInvalidCapacity},
		{
			name:   "resources over limit NG",
			mutate: func(b *builder.RoomBuilder) { b.Resources = ptr.Of(strings.Repeat("r", room.MaxResourcesLength+1)) },
			errIs:  room.ErrInvalidResources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, err := builder.NewRoomBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, rm)
				return
			}
			require.NoError(t, err)
			assert.True(t, rm.BelongsTo(1))
		})
	}
}

func TestRoom_MoveTo(t *testing.T) {
	rm := builder.NewRoomBuilder().BuildStored()
	rm.MoveTo(7)

	assert.True(t, rm.BelongsTo(7))
	assert.False(t, rm.BelongsTo(1))
}

func TestRoom_SetCapacity(t *testing.T) {
	rm := builder.NewRoomBuilder().BuildStored()

	require.ErrorIs(t, rm.SetCapacity(ptr.Of(0)), room.ErrInvalidCapacity)
	assert.Equal(t, ptr.Of(10), rm.Capacity())

	require.NoError(t, rm.SetCapacity(nil))
	assert.Nil(t, rm.Capacity())
}
