//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		loginAt := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
		expected := user.ReconstructUser(0, "google-oauth2|100", email, "Test User", nil, &loginAt, time.Time{}, time.Time{})

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "surrounding spaces and upper case OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "empty address NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "invalid format NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @ NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "name at limit OK",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) },
			},
			{
				name:   "name over limit NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("external id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty external id NG",
				mutate: func(b *builder.UserBuilder) { b.WithExternalID(" ") },
				errIs:  user.ErrInvalidExternalID,
			},
		})
	})
}

func TestEmail_Normalized(t *testing.T) {
	email, err := user.NewEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.Value())
}

func TestUser_RecordLogin(t *testing.T) {
	avatar := "https://example.com/a.png"
	u := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.AvatarURL = &avatar }).BuildStored()
	later := time.Date(2030, 2, 1, 8, 0, 0, 0, time.UTC)

	t.Run("keeps avatar when none is given", func(t *testing.T) {
		require.NoError(t, u.RecordLogin(" New Name ", nil, later))
		assert.Equal(t, "New Name", u.Name())
		assert.Equal(t, ptr.Of(avatar), u.AvatarURL())
		require.NotNil(t, u.LastLoginAt())
		assert.True(t, later.Equal(*u.LastLoginAt()))
	})

	t.Run("replaces avatar", func(t *testing.T) {
		next := "https://example.com/b.png"
		require.NoError(t, u.RecordLogin("New Name", &next, later))
		assert.Equal(t, &next, u.AvatarURL())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		require.ErrorIs(t, u.RecordLogin("", nil, later), user.ErrInvalidName)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
