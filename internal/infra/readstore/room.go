package readstore

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
)

type RoomReadQueries interface {
	GetRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRoomParams) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomsParams) ([]sqlc.Rooms, error)
	CountRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.CountRoomsParams) (int64, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	row, err := r.queries.GetRoom(ctx, r.db, sqlc.GetRoomParams{ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter, page queries.Page) ([]*queries.RoomView, error) {
	offset, limit := pageBounds(page)
	rows, err := r.queries.ListRooms(ctx, r.db, sqlc.ListRoomsParams{
		LocationID:  pgconv.Int64PtrToPgtype(filter.LocationID),
		Active:      pgconv.BoolPtrToPgtype(filter.Active),
		MinCapacity: pgconv.IntPtrToPgtype(filter.MinCapacity),
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(row)
	}
	return result, nil
}

func (r *RoomReadStore) Count(ctx context.Context, filter queries.RoomFilter) (int64, error) {
	n, err := r.queries.CountRooms(ctx, r.db, sqlc.CountRoomsParams{
		LocationID:  pgconv.Int64PtrToPgtype(filter.LocationID),
		Active:      pgconv.BoolPtrToPgtype(filter.Active),
		MinCapacity: pgconv.IntPtrToPgtype(filter.MinCapacity),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return n, nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:         row.ID,
		LocationID: row.LocationID,
		Name:       row.Name,
		Capacity:   pgconv.IntPtrFromPgtype(row.Capacity),
		Resources:  pgconv.StringPtrFromPgtype(row.Resources),
		Active:     row.Active,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
