package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countLocations = `-- name: CountLocations :one
SELECT count(*) FROM locations
WHERE deleted_at IS NULL
  AND ($1::boolean IS NULL OR active = $1)
`

func (q *Queries) CountLocations(ctx context.Context, db DBTX, active pgtype.Bool) (int64, error) {
	row := db.QueryRow(ctx, countLocations, active)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createLocation = `-- name: CreateLocation :one
INSERT INTO locations (name, description, active)
VALUES ($1, $2, $3)
RETURNING id, name, description, active, created_at, updated_at, deleted_at
`

type CreateLocationParams struct {
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Active      bool        `json:"active"`
}

func (q *Queries) CreateLocation(ctx context.Context, db DBTX, arg CreateLocationParams) (Locations, error) {
	row := db.QueryRow(ctx, createLocation, arg.Name, arg.Description, arg.Active)
	var i Locations
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

const getLocation = `-- name: GetLocation :one
SELECT id, name, description, active, created_at, updated_at, deleted_at FROM locations
WHERE id = $1
  AND ($2::boolean OR deleted_at IS NULL)
`

type GetLocationParams struct {
	ID             int64 `json:"id"`
	IncludeDeleted bool  `json:"include_deleted"`
}

func (q *Queries) GetLocation(ctx context.Context, db DBTX, arg GetLocationParams) (Locations, error) {
	row := db.QueryRow(ctx, getLocation, arg.ID, arg.IncludeDeleted)
	var i Locations
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

const listLocations = `-- name: ListLocations :many
SELECT id, name, description, active, created_at, updated_at, deleted_at FROM locations
WHERE deleted_at IS NULL
  AND ($1::boolean IS NULL OR active = $1)
ORDER BY name, id
OFFSET $2 LIMIT $3
`

type ListLocationsParams struct {
	Active pgtype.Bool `json:"active"`
	Offset int32       `json:"offset"`
	Limit  int32       `json:"limit"`
}

func (q *Queries) ListLocations(ctx context.Context, db DBTX, arg ListLocationsParams) ([]Locations, error) {
	rows, err := db.Query(ctx, listLocations, arg.Active, arg.Offset, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Locations
	for rows.Next() {
		var i Locations
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
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

const locationNameExists = `-- name: LocationNameExists :one
SELECT EXISTS (
  SELECT 1 FROM locations
  WHERE name = $1
    AND deleted_at IS NULL
    AND ($2::bigint IS NULL OR id <> $2)
)
`

type LocationNameExistsParams struct {
	Name      string      `json:"name"`
	ExcludeID pgtype.Int8 `json:"exclude_id"`
}

func (q *Queries) LocationNameExists(ctx context.Context, db DBTX, arg LocationNameExistsParams) (bool, error) {
	row := db.QueryRow(ctx, locationNameExists, arg.Name, arg.ExcludeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const softDeleteLocation = `-- name: SoftDeleteLocation :execrows
UPDATE locations
SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL
`

type SoftDeleteLocationParams struct {
	ID        int64              `json:"id"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

func (q *Queries) SoftDeleteLocation(ctx context.Context, db DBTX, arg SoftDeleteLocationParams) (int64, error) {
	result, err := db.Exec(ctx, softDeleteLocation, arg.ID, arg.DeletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateLocation = `-- name: UpdateLocation :one
UPDATE locations
SET name = $2, description = $3, active = $4, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING id, name, description, active, created_at, updated_at, deleted_at
`

type UpdateLocationParams struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Active      bool        `json:"active"`
}

func (q *Queries) UpdateLocation(ctx context.Context, db DBTX, arg UpdateLocationParams) (Locations, error) {
	row := db.QueryRow(ctx, updateLocation,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Active,
	)
	var i Locations
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}
