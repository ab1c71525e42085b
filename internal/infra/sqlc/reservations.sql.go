package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, location_id, room_id, location_name, room_name, start_time, end_time, responsible, coffee, coffee_quantity, description, created_by, created_at, updated_at, deleted_at`

const reservationFilters = `
WHERE deleted_at IS NULL
  AND ($1::bigint IS NULL OR room_id = $1)
  AND ($2::bigint IS NULL OR location_id = $2)
  AND CASE
        WHEN $3::timestamptz IS NOT NULL AND $4::timestamptz IS NOT NULL
          THEN start_time < $4 AND end_time > $3
        WHEN $3::timestamptz IS NOT NULL THEN start_time >= $3
        WHEN $4::timestamptz IS NOT NULL THEN end_time <= $4
        ELSE TRUE
      END
  AND ($5::text IS NULL OR room_name ILIKE '%' || $5 || '%')
  AND ($6::text IS NULL OR location_name ILIKE '%' || $6 || '%')
  AND ($7::text IS NULL OR responsible ILIKE '%' || $7 || '%')
`

const countReservations = `-- name: CountReservations :one
SELECT count(*) FROM reservations` + reservationFilters

type CountReservationsParams struct {
	RoomID       pgtype.Int8        `json:"room_id"`
	LocationID   pgtype.Int8        `json:"location_id"`
	StartTime    pgtype.Timestamptz `json:"start_time"`
	EndTime      pgtype.Timestamptz `json:"end_time"`
	RoomName     pgtype.Text        `json:"room_name"`
	LocationName pgtype.Text        `json:"location_name"`
	Responsible  pgtype.Text        `json:"responsible"`
}

func (q *Queries) CountReservations(ctx context.Context, db DBTX, arg CountReservationsParams) (int64, error) {
	row := db.QueryRow(ctx, countReservations,
		arg.RoomID,
		arg.LocationID,
		arg.StartTime,
		arg.EndTime,
		arg.RoomName,
		arg.LocationName,
		arg.Responsible,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
  location_id, room_id, location_name, room_name, start_time, end_time,
  responsible, coffee, coffee_quantity, description, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	LocationID     int64              `json:"location_id"`
	RoomID         int64              `json:"room_id"`
	LocationName   string             `json:"location_name"`
	RoomName       string             `json:"room_name"`
	StartTime      pgtype.Timestamptz `json:"start_time"`
	EndTime        pgtype.Timestamptz `json:"end_time"`
	Responsible    string             `json:"responsible"`
	Coffee         bool               `json:"coffee"`
	CoffeeQuantity pgtype.Int4        `json:"coffee_quantity"`
	Description    pgtype.Text        `json:"description"`
	CreatedBy      pgtype.Text        `json:"created_by"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.LocationID,
		arg.RoomID,
		arg.LocationName,
		arg.RoomName,
		arg.StartTime,
		arg.EndTime,
		arg.Responsible,
		arg.Coffee,
		arg.CoffeeQuantity,
		arg.Description,
		arg.CreatedBy,
	)
	return scanReservation(row)
}

const getReservation = `-- name: GetReservation :one
SELECT ` + reservationColumns + ` FROM reservations
WHERE id = $1
  AND ($2::boolean OR deleted_at IS NULL)
`

type GetReservationParams struct {
	ID             int64 `json:"id"`
	IncludeDeleted bool  `json:"include_deleted"`
}

func (q *Queries) GetReservation(ctx context.Context, db DBTX, arg GetReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, getReservation, arg.ID, arg.IncludeDeleted)
	return scanReservation(row)
}

const listOverlappingReservations = `-- name: ListOverlappingReservations :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE room_id = $1
  AND deleted_at IS NULL
  AND start_time < $3
  AND end_time > $2
ORDER BY id
`

type ListOverlappingReservationsParams struct {
	RoomID    int64              `json:"room_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
}

// ListOverlappingReservations is served by idx_reservations_room_time.
func (q *Queries) ListOverlappingReservations(ctx context.Context, db DBTX, arg ListOverlappingReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listOverlappingReservations, arg.RoomID, arg.StartTime, arg.EndTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listReservations = `-- name: ListReservations :many
SELECT ` + reservationColumns + ` FROM reservations` + reservationFilters + `
ORDER BY start_time, id
OFFSET $8 LIMIT $9
`

type ListReservationsParams struct {
	RoomID       pgtype.Int8        `json:"room_id"`
	LocationID   pgtype.Int8        `json:"location_id"`
	StartTime    pgtype.Timestamptz `json:"start_time"`
	EndTime      pgtype.Timestamptz `json:"end_time"`
	RoomName     pgtype.Text        `json:"room_name"`
	LocationName pgtype.Text        `json:"location_name"`
	Responsible  pgtype.Text        `json:"responsible"`
	Offset       int32              `json:"offset"`
	Limit        int32              `json:"limit"`
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservations,
		arg.RoomID,
		arg.LocationID,
		arg.StartTime,
		arg.EndTime,
		arg.RoomName,
		arg.LocationName,
		arg.Responsible,
		arg.Offset,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const softDeleteReservation = `-- name: SoftDeleteReservation :execrows
UPDATE reservations
SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL
`

type SoftDeleteReservationParams struct {
	ID        int64              `json:"id"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

func (q *Queries) SoftDeleteReservation(ctx context.Context, db DBTX, arg SoftDeleteReservationParams) (int64, error) {
	result, err := db.Exec(ctx, softDeleteReservation, arg.ID, arg.DeletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateReservation = `-- name: UpdateReservation :one
UPDATE reservations
SET location_id = $2, room_id = $3, location_name = $4, room_name = $5,
    start_time = $6, end_time = $7, responsible = $8, coffee = $9,
    coffee_quantity = $10, description = $11, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + reservationColumns

type UpdateReservationParams struct {
	ID             int64              `json:"id"`
	LocationID     int64              `json:"location_id"`
	RoomID         int64              `json:"room_id"`
	LocationName   string             `json:"location_name"`
	RoomName       string             `json:"room_name"`
	StartTime      pgtype.Timestamptz `json:"start_time"`
	EndTime        pgtype.Timestamptz `json:"end_time"`
	Responsible    string             `json:"responsible"`
	Coffee         bool               `json:"coffee"`
	CoffeeQuantity pgtype.Int4        `json:"coffee_quantity"`
	Description    pgtype.Text        `json:"description"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, updateReservation,
		arg.ID,
		arg.LocationID,
		arg.RoomID,
		arg.LocationName,
		arg.RoomName,
		arg.StartTime,
		arg.EndTime,
		arg.Responsible,
		arg.Coffee,
		arg.CoffeeQuantity,
		arg.Description,
	)
	return scanReservation(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.RoomID,
		&i.LocationName,
		&i.RoomName,
		&i.StartTime,
		&i.EndTime,
		&i.Responsible,
		&i.Coffee,
		&i.CoffeeQuantity,
		&i.Description,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}
