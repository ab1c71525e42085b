package bootstrap

import (
	"fmt"
	"time"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewIdentityVerifier,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}

func NewIdentityVerifier(cfg config.Config) *jwt.IdentityVerifier {
	return jwt.NewIdentityVerifier(cfg.Identity.Secret, cfg.Identity.Audience, cfg.Identity.Issuer)
}
