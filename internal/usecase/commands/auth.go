package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
)

var ErrTokenGeneration = errs.New("token generation failed")

type IdentityVerifier interface {
	Verify(tokenString string) (*jwt.Identity, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, email, name string) (string, error)
}

type LoginResult struct {
	AccessToken string
	User        *user.User
}

type AuthCommands interface {
	// Login exchanges an identity provider token for an access token.
	Login(ctx context.Context, idToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	verifier IdentityVerifier
	users    UserCommands
	issuer   TokenIssuer
}

func NewAuthCommands(verifier IdentityVerifier, users UserCommands, issuer TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		verifier: verifier,
		users:    users,
		issuer:   issuer,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	identity, err := a.verifier.Verify(idToken)
	if err != nil {
		return nil, err
	}

	u, err := a.users.Upsert(ctx, UpsertUserInput{
		ExternalID: identity.Subject,
		Email:      identity.Email,
		Name:       identity.Name,
		AvatarURL:  identity.AvatarURL,
	})
	if err != nil {
		return nil, err
	}

	token, err := a.issuer.GenerateToken(u.ID(), u.Email().Value(), u.Name())
	if err != nil {
		slog.Error("failed to sign access token", "user_id", u.ID(), "error", err)
		return nil, errs.Mark(errs.Wrap(err, "sign access token"), ErrTokenGeneration)
	}

	slog.Info("user logged in", "user_id", u.ID())
	return &LoginResult{AccessToken: token, User: u}, nil
}
