//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.Config
}

func NewJWTHelper(cfg config.Config) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, email, name string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.JWT.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.JWT.Secret, duration).GenerateToken(userID, email, name)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, email, name string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWT.Secret, time.Millisecond).GenerateToken(userID, email, name)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// IdentityToken signs a login provider token the configured verifier accepts.
func (h *JWTHelper) IdentityToken(t *testing.T, subject, email, name string) string {
	t.Helper()
	return SignIdentityToken(t, h.cfg.Identity, gojwt.MapClaims{
		"sub":   subject,
		"email": email,
		"name":  name,
	})
}

// SignIdentityToken fills aud, iss and exp from cfg unless claims set them.
func SignIdentityToken(t *testing.T, cfg config.IdentityConfig, claims gojwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["aud"]; !ok {
		claims["aud"] = cfg.Audience
	}
	if _, ok := claims["iss"]; !ok && cfg.Issuer != "" {
		claims["iss"] = cfg.Issuer
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)
	return token
}
