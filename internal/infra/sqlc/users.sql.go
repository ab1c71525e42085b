package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, external_id, email, name, avatar_url, last_login_at, created_at, updated_at`

const countUsers = `-- name: CountUsers :one
SELECT count(*) FROM users
WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
`

func (q *Queries) CountUsers(ctx context.Context, db DBTX, query pgtype.Text) (int64, error) {
	row := db.QueryRow(ctx, countUsers, query)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (external_id, email, name, avatar_url, last_login_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

type CreateUserParams struct {
	ExternalID  string             `json:"external_id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	AvatarUrl   pgtype.Text        `json:"avatar_url"`
	LastLoginAt pgtype.Timestamptz `json:"last_login_at"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ExternalID,
		arg.Email,
		arg.Name,
		arg.AvatarUrl,
		arg.LastLoginAt,
	)
	return scanUser(row)
}

const getUser = `-- name: GetUser :one
SELECT ` + userColumns + ` FROM users WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, db DBTX, id int64) (Users, error) {
	row := db.QueryRow(ctx, getUser, id)
	return scanUser(row)
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, getUserByEmail, email)
	return scanUser(row)
}

const getUserByExternalID = `-- name: GetUserByExternalID :one
SELECT ` + userColumns + ` FROM users WHERE external_id = $1
`

func (q *Queries) GetUserByExternalID(ctx context.Context, db DBTX, externalID string) (Users, error) {
	row := db.QueryRow(ctx, getUserByExternalID, externalID)
	return scanUser(row)
}

const searchUsers = `-- name: SearchUsers :many
SELECT ` + userColumns + ` FROM users
WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
ORDER BY name, id
OFFSET $2 LIMIT $3
`

type SearchUsersParams struct {
	Query  pgtype.Text `json:"query"`
	Offset int32       `json:"offset"`
	Limit  int32       `json:"limit"`
}

func (q *Queries) SearchUsers(ctx context.Context, db DBTX, arg SearchUsersParams) ([]Users, error) {
	rows, err := db.Query(ctx, searchUsers, arg.Query, arg.Offset, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		i, err := scanUser(rows)
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

const updateUserLogin = `-- name: UpdateUserLogin :one
UPDATE users
SET name = $2, avatar_url = $3, last_login_at = $4, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

type UpdateUserLoginParams struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	AvatarUrl   pgtype.Text        `json:"avatar_url"`
	LastLoginAt pgtype.Timestamptz `json:"last_login_at"`
}

func (q *Queries) UpdateUserLogin(ctx context.Context, db DBTX, arg UpdateUserLoginParams) (Users, error) {
	row := db.QueryRow(ctx, updateUserLogin,
		arg.ID,
		arg.Name,
		arg.AvatarUrl,
		arg.LastLoginAt,
	)
	return scanUser(row)
}

func scanUser(row rowScanner) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.ExternalID,
		&i.Email,
		&i.Name,
		&i.AvatarUrl,
		&i.LastLoginAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
