package usecase

import (
	"room-reservation/internal/pkg/jwt"
)

// AuthenticatedUser is the acting identity carried by an access token.
type AuthenticatedUser struct {
	ID    int64
	Email string
	Name  string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*AuthenticatedUser, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*AuthenticatedUser, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &AuthenticatedUser{
		ID:    claims.UserID(),
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
