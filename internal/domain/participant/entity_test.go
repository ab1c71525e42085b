//go:build unit

package participant_test

import (
	"strings"
	"testing"

	"room-reservation/internal/domain/participant"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name       string
		userID     *int64
		manualName *string
		wantName   *string
		errIs      error
	}{
		{name: "user only OK", userID: ptr.Of(int64(3))},
		{name: "manual name only OK", manualName: ptr.Of("  Bob "), wantName: ptr.Of("Bob")},
		{name: "both NG", userID: ptr.Of(int64(3)), manualName: ptr.Of("Bob"), errIs: participant.ErrIdentityRequired},
		{name: "neither NG", errIs: participant.ErrIdentityRequired},
		{name: "blank name counts as absent", manualName: ptr.Of("   "), errIs: participant.ErrIdentityRequired},
		{name: "user with blank name OK", userID: ptr.Of(int64(3)), manualName: ptr.Of("")},
		{
			name:       "name over limit NG",
			manualName: ptr.Of(strings.Repeat("n", participant.MaxManualNameLength+1)),
			errIs:      participant.ErrInvalidManualName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := participant.NewIdentity(tt.userID, tt.manualName)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, id.UserID())
			assert.Equal(t, tt.wantName, id.ManualName())
			assert.Equal(t, tt.userID != nil, id.IsUser())
		})
	}
}

func TestIdentityRequired_IsRelationshipError(t *testing.T) {
	_, err := participant.NewIdentity(nil, nil)
	assert.Equal(t, errs.KindInvalidRelationship, errs.KindOf(err))
}
