package converter

import (
	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

func RoomToCreateParams(rm *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		LocationID: rm.LocationID(),
		Name:       rm.Name(),
		Capacity:   pgconv.IntPtrToPgtype(rm.Capacity()),
		Resources:  pgconv.StringPtrToPgtype(rm.Resources()),
		Active:     rm.Active(),
	}
}

func RoomToUpdateParams(rm *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:         rm.ID(),
		LocationID: rm.LocationID(),
		Name:       rm.Name(),
		Capacity:   pgconv.IntPtrToPgtype(rm.Capacity()),
		Resources:  pgconv.StringPtrToPgtype(rm.Resources()),
		Active:     rm.Active(),
	}
}

func RoomFromRow(row sqlc.Rooms) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		row.LocationID,
		row.Name,
		pgconv.IntPtrFromPgtype(row.Capacity),
		pgconv.StringPtrFromPgtype(row.Resources),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	)
}
