//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"room-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	taken := errs.NewKind("name taken", errs.ErrConflict)

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "tagged sentinel", err: taken, want: errs.KindConflict},
		{name: "wrapped keeps kind", err: errs.Wrap(errs.Wrap(taken, "create"), "tx"), want: errs.KindConflict},
		{name: "fmt wrapping keeps kind", err: fmt.Errorf("ctx: %w", taken), want: errs.KindConflict},
		{name: "untagged", err: errors.New("boom"), want: errs.KindInternal},
		{name: "kind sentinel itself", err: errs.ErrInvalidCoffee, want: errs.KindInvalidCoffee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestNewKind_IsDistinct(t *testing.T) {
	roomMissing := errs.NewKind("room not found", errs.ErrNotFound)
	locationMissing := errs.NewKind("location not found", errs.ErrNotFound)
	wrapped := errs.Wrap(roomMissing, "load room")

	assert.True(t, errs.Is(roomMissing, errs.ErrNotFound))
	assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.True(t, errs.Is(wrapped, roomMissing))
	assert.False(t, errs.Is(roomMissing, locationMissing))
	assert.False(t, errs.Is(wrapped, locationMissing))
	assert.False(t, errs.Is(roomMissing, errs.ErrConflict))
	assert.False(t, errors.Is(roomMissing, locationMissing), "stdlib errors.Is agrees")
}
