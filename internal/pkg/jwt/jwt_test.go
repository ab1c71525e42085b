//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	s := NewService("secret", time.Hour)

	token, err := s.GenerateToken(42, "alice@example.com", "Alice")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestService_ValidateToken(t *testing.T) {
	issued := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewService("secret", time.Hour)
	s.now = func() time.Time { return issued }
	token, err := s.GenerateToken(1, "a@example.com", "A")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Hour)
		later.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		other.now = s.now
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing email", func(t *testing.T) {
		raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub": "1",
			"exp": issued.Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = s.ValidateToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_UserID(t *testing.T) {
	assert.Equal(t, int64(0), (&Claims{}).UserID())
	assert.Equal(t, int64(0), (&Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "abc"}}).UserID())
}

func signIdentity(t *testing.T, secret string, claims gojwt.MapClaims) string {
	t.Helper()
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestIdentityVerifier_Verify(t *testing.T) {
	v := NewIdentityVerifier("idp-secret", "room-reservation", "https://idp.example.com/")
	exp := time.Now().Add(time.Hour).Unix()
	valid := func() gojwt.MapClaims {
		return gojwt.MapClaims{
			"sub":     "google-oauth2|1",
			"email":   " Alice@Example.com ",
			"name":    "Alice",
			"picture": "https://cdn.example.com/a.png",
			"aud":     "room-reservation",
			"iss":     "https://idp.example.com/",
			"exp":     exp,
		}
	}

	t.Run("valid", func(t *testing.T) {
		got, err := v.Verify(signIdentity(t, "idp-secret", valid()))
		require.NoError(t, err)
		assert.Equal(t, "google-oauth2|1", got.Subject)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "Alice", got.Name)
		require.NotNil(t, got.AvatarURL)
		assert.Equal(t, "https://cdn.example.com/a.png", *got.AvatarURL)
	})

	t.Run("blank name falls back to the email", func(t *testing.T) {
		c := valid()
		c["name"] = "  "
		got, err := v.Verify(signIdentity(t, "idp-secret", c))
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Name)
	})

	rejected := []struct {
		name   string
		secret string
		mutate func(gojwt.MapClaims)
	}{
		{name: "wrong secret", secret: "nope", mutate: func(gojwt.MapClaims) {}},
		{name: "wrong audience", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { c["aud"] = "other" }},
		{name: "wrong issuer", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { c["iss"] = "https://evil.example.com/" }},
		{name: "no expiry", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { delete(c, "exp") }},
		{name: "expired", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { c["exp"] = time.Now().Add(-time.Minute).Unix() }},
		{name: "no subject", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { delete(c, "sub") }},
		{name: "no email", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { c["email"] = " " }},
		{name: "unverified email", secret: "idp-secret", mutate: func(c gojwt.MapClaims) { c["email_verified"] = false }},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			_, err := v.Verify(signIdentity(t, tc.secret, c))
			assert.ErrorIs(t, err, ErrInvalidIdentity)
		})
	}
}
