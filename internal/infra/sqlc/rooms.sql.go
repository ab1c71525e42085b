package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countRooms = `-- name: CountRooms :one
SELECT count(*) FROM rooms
WHERE deleted_at IS NULL
  AND ($1::bigint IS NULL OR location_id = $1)
  AND ($2::boolean IS NULL OR active = $2)
  AND ($3::integer IS NULL OR capacity >= $3)
`

type CountRoomsParams struct {
	LocationID  pgtype.Int8 `json:"location_id"`
	Active      pgtype.Bool `json:"active"`
	MinCapacity pgtype.Int4 `json:"min_capacity"`
}

func (q *Queries) CountRooms(ctx context.Context, db DBTX, arg CountRoomsParams) (int64, error) {
	row := db.QueryRow(ctx, countRooms, arg.LocationID, arg.Active, arg.MinCapacity)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createRoom = `-- name: CreateRoom :one
INSERT INTO rooms (location_id, name, capacity, resources, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, location_id, name, capacity, resources, active, created_at, updated_at, deleted_at
`

type CreateRoomParams struct {
	LocationID int64       `json:"location_id"`
	Name       string      `json:"name"`
	Capacity   pgtype.Int4 `json:"capacity"`
	Resources  pgtype.Text `json:"resources"`
	Active     bool        `json:"active"`
}

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) (Rooms, error) {
	row := db.QueryRow(ctx, createRoom,
		arg.LocationID,
		arg.Name,
		arg.Capacity,
		arg.Resources,
		arg.Active,
	)
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.Name,
		&i.Capacity,
		&i.Resources,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

const getRoom = `-- name: GetRoom :one
SELECT id, location_id, name, capacity, resources, active, created_at, updated_at, deleted_at FROM rooms
WHERE id = $1
  AND ($2::boolean OR deleted_at IS NULL)
`

type GetRoomParams struct {
	ID             int64 `json:"id"`
	IncludeDeleted bool  `json:"include_deleted"`
}

func (q *Queries) GetRoom(ctx context.Context, db DBTX, arg GetRoomParams) (Rooms, error) {
	row := db.QueryRow(ctx, getRoom, arg.ID, arg.IncludeDeleted)
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.Name,
		&i.Capacity,
		&i.Resources,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

const listRooms = `-- name: ListRooms :many
SELECT id, location_id, name, capacity, resources, active, created_at, updated_at, deleted_at FROM rooms
WHERE deleted_at IS NULL
  AND ($1::bigint IS NULL OR location_id = $1)
  AND ($2::boolean IS NULL OR active = $2)
  AND ($3::integer IS NULL OR capacity >= $3)
ORDER BY name, id
OFFSET $4 LIMIT $5
`

type ListRoomsParams struct {
	LocationID  pgtype.Int8 `json:"location_id"`
	Active      pgtype.Bool `json:"active"`
	MinCapacity pgtype.Int4 `json:"min_capacity"`
	Offset      int32       `json:"offset"`
	Limit       int32       `json:"limit"`
}

func (q *Queries) ListRooms(ctx context.Context, db DBTX, arg ListRoomsParams) ([]Rooms, error) {
	rows, err := db.Query(ctx, listRooms,
		arg.LocationID,
		arg.Active,
		arg.MinCapacity,
		arg.Offset,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rooms
	for rows.Next() {
		var i Rooms
		if err := rows.Scan(
			&i.ID,
			&i.LocationID,
			&i.Name,
			&i.Capacity,
			&i.Resources,
			&i.Active,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockRoom = `-- name: LockRoom :one
SELECT id, location_id, name, capacity, resources, active, created_at, updated_at, deleted_at FROM rooms
WHERE id = $1
  AND ($2::boolean OR deleted_at IS NULL)
FOR UPDATE
`

type LockRoomParams struct {
	ID             int64 `json:"id"`
	IncludeDeleted bool  `json:"include_deleted"`
}

// LockRoom holds the room row until the surrounding transaction ends, which
// serializes bookings of the same room.
func (q *Queries) LockRoom(ctx context.Context, db DBTX, arg LockRoomParams) (Rooms, error) {
	row := db.QueryRow(ctx, lockRoom, arg.ID, arg.IncludeDeleted)
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.Name,
		&i.Capacity,
		&i.Resources,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

const roomNameExists = `-- name: RoomNameExists :one
SELECT EXISTS (
  SELECT 1 FROM rooms
  WHERE location_id = $1
    AND name = $2
    AND deleted_at IS NULL
    AND ($3::bigint IS NULL OR id <> $3)
)
`

type RoomNameExistsParams struct {
	LocationID int64       `json:"location_id"`
	Name       string      `json:"name"`
	ExcludeID  pgtype.Int8 `json:"exclude_id"`
}

func (q *Queries) RoomNameExists(ctx context.Context, db DBTX, arg RoomNameExistsParams) (bool, error) {
	row := db.QueryRow(ctx, roomNameExists, arg.LocationID, arg.Name, arg.ExcludeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const softDeleteRoom = `-- name: SoftDeleteRoom :execrows
UPDATE rooms
SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL
`

type SoftDeleteRoomParams struct {
	ID        int64              `json:"id"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

func (q *Queries) SoftDeleteRoom(ctx context.Context, db DBTX, arg SoftDeleteRoomParams) (int64, error) {
	result, err := db.Exec(ctx, softDeleteRoom, arg.ID, arg.DeletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateRoom = `-- name: UpdateRoom :one
UPDATE rooms
SET location_id = $2, name = $3, capacity = $4, resources = $5, active = $6, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING id, location_id, name, capacity, resources, active, created_at, updated_at, deleted_at
`

type UpdateRoomParams struct {
	ID         int64       `json:"id"`
	LocationID int64       `json:"location_id"`
	Name       string      `json:"name"`
	Capacity   pgtype.Int4 `json:"capacity"`
	Resources  pgtype.Text `json:"resources"`
	Active     bool        `json:"active"`
}

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg UpdateRoomParams) (Rooms, error) {
	row := db.QueryRow(ctx, updateRoom,
		arg.ID,
		arg.LocationID,
		arg.Name,
		arg.Capacity,
		arg.Resources,
		arg.Active,
	)
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.Name,
		&i.Capacity,
		&i.Resources,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}
