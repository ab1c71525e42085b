package readstore

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	SearchUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchUsersParams) ([]sqlc.Users, error)
	CountUsers(ctx context.Context, db sqlc.DBTX, query pgtype.Text) (int64, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) Search(ctx context.Context, term *string, page queries.Page) ([]*queries.UserView, error) {
	offset, limit := pageBounds(page)
	rows, err := r.queries.SearchUsers(ctx, r.db, sqlc.SearchUsersParams{
		Query:  pgconv.StringPtrToPgtype(term),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}

	result := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		result[i] = toUserView(row)
	}
	return result, nil
}

func (r *UserReadStore) Count(ctx context.Context, term *string) (int64, error) {
	n, err := r.queries.CountUsers(ctx, r.db, pgconv.StringPtrToPgtype(term))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		AvatarURL:   pgconv.StringPtrFromPgtype(row.AvatarUrl),
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
