package repository

import (
	"context"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	GetUserByExternalID(ctx context.Context, db sqlc.DBTX, externalID string) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLoginParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	return r.toEntity(row, err, "failed to find user by ID")
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	row, err := r.queries.GetUserByExternalID(ctx, r.db, externalID)
	return r.toEntity(row, err, "failed to find user by external ID")
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email.Value())
	return r.toEntity(row, err, "failed to find user by email")
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	return r.toEntity(row, err, "failed to create user")
}

func (r *UserRepository) UpdateLogin(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.UpdateUserLogin(ctx, r.db, converter.UserToUpdateLoginParams(u))
	return r.toEntity(row, err, "failed to update user login")
}

func (r *UserRepository) toEntity(row sqlc.Users, err error, msg string) (*user.User, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}
