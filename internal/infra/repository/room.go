package repository

import (
	"context"
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
)

type RoomWriteQueries interface {
	GetRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRoomParams) (sqlc.Rooms, error)
	LockRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.LockRoomParams) (sqlc.Rooms, error)
	RoomNameExists(ctx context.Context, db sqlc.DBTX, arg sqlc.RoomNameExistsParams) (bool, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (sqlc.Rooms, error)
	SoftDeleteRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteRoomParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64, vis shared.Visibility) (*room.Room, error) {
	row, err := r.queries.GetRoom(ctx, r.db, sqlc.GetRoomParams{
		ID:             id,
		IncludeDeleted: vis.IncludesDeleted(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) Lock(ctx context.Context, id int64, vis shared.Visibility) (*room.Room, error) {
	row, err := r.queries.LockRoom(ctx, r.db, sqlc.LockRoomParams{
		ID:             id,
		IncludeDeleted: vis.IncludesDeleted(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) NameExists(ctx context.Context, locationID int64, name string, excludeID *int64) (bool, error) {
	exists, err := r.queries.RoomNameExists(ctx, r.db, sqlc.RoomNameExistsParams{
		LocationID: locationID,
		Name:       name,
		ExcludeID:  pgconv.Int64PtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room name", err)
	}
	return exists, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.UpdateRoom(ctx, r.db, converter.RoomToUpdateParams(rm))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	n, err := r.queries.SoftDeleteRoom(ctx, r.db, sqlc.SoftDeleteRoomParams{
		ID:        id,
		DeletedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete room", err)
	}
	return n > 0, nil
}
