package jwt

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidIdentity = errors.New("invalid identity token")

// Identity is the verified subject of an identity provider token.
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL *string
}

type identityClaims struct {
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified,omitempty"`
	Name          string `json:"name"`
	Picture       string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// IdentityVerifier checks identity tokens signed by the login provider with a
// shared HMAC secret.
type IdentityVerifier struct {
	secret   []byte
	audience string
	issuer   string
}

func NewIdentityVerifier(secret, audience, issuer string) *IdentityVerifier {
	return &IdentityVerifier{
		secret:   []byte(secret),
		audience: audience,
		issuer:   issuer,
	}
}

func (v *IdentityVerifier) Verify(tokenString string) (*Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidIdentity
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidIdentity
	}
	if claims.Subject == "" || strings.TrimSpace(claims.Email) == "" {
		return nil, ErrInvalidIdentity
	}
	if claims.EmailVerified != nil && !*claims.EmailVerified {
		return nil, ErrInvalidIdentity
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	name := strings.TrimSpace(claims.Name)
	if name == "" {
		name = email
	}
	identity := &Identity{
		Subject: claims.Subject,
		Email:   email,
		Name:    name,
	}
	if claims.Picture != "" {
		pic := claims.Picture
		identity.AvatarURL = &pic
	}
	return identity, nil
}
