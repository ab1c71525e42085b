package converter

import (
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ExternalID:  u.ExternalID(),
		Email:       u.Email().Value(),
		Name:        u.Name(),
		AvatarUrl:   pgconv.StringPtrToPgtype(u.AvatarURL()),
		LastLoginAt: pgconv.TimePtrToPgtype(u.LastLoginAt()),
	}
}

func UserToUpdateLoginParams(u *user.User) sqlc.UpdateUserLoginParams {
	return sqlc.UpdateUserLoginParams{
		ID:          u.ID(),
		Name:        u.Name(),
		AvatarUrl:   pgconv.StringPtrToPgtype(u.AvatarURL()),
		LastLoginAt: pgconv.TimePtrToPgtype(u.LastLoginAt()),
	}
}

// UserFromRow trusts the stored email, it was validated on insert.
func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		row.ExternalID,
		email,
		row.Name,
		pgconv.StringPtrFromPgtype(row.AvatarUrl),
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
