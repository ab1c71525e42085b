package commands

import (
	"context"
	"strings"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/usecase/shared"
)

type UpsertUserInput struct {
	ExternalID string
	Email      string
	Name       string
	AvatarURL  *string
}

type UserCommands interface {
	// Upsert matches by external id first, then by email.
	Upsert(ctx context.Context, in UpsertUserInput) (*user.User, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (u *userCommandsImpl) Upsert(ctx context.Context, in UpsertUserInput) (*user.User, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email.Value()
	}

	var result *user.User
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := u.clock.Now()

		existing, derr := findLoginUser(ctx, tx.Users(), in.ExternalID, email)
		if derr != nil {
			return derr
		}

		if existing != nil {
			if derr = existing.RecordLogin(name, in.AvatarURL, now); derr != nil {
				return derr
			}
			result, derr = tx.Users().UpdateLogin(ctx, existing)
			return derr
		}

		created, derr := user.NewUser(in.ExternalID, email, name, in.AvatarURL, now)
		if derr != nil {
			return derr
		}
		result, derr = tx.Users().Create(ctx, created)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findLoginUser returns nil without error when neither key matches.
func findLoginUser(ctx context.Context, users shared.UserRepository, externalID string, email user.Email) (*user.User, error) {
	if externalID != "" {
		found, err := users.FindByExternalID(ctx, externalID)
		if err == nil {
			return found, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}

	found, err := users.FindByEmail(ctx, email)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}
