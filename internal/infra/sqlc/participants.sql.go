package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createParticipant = `-- name: CreateParticipant :one
INSERT INTO participants (reservation_id, user_id, manual_name)
VALUES ($1, $2, $3)
RETURNING id, reservation_id, user_id, manual_name, created_at
`

type CreateParticipantParams struct {
	ReservationID int64       `json:"reservation_id"`
	UserID        pgtype.Int8 `json:"user_id"`
	ManualName    pgtype.Text `json:"manual_name"`
}

func (q *Queries) CreateParticipant(ctx context.Context, db DBTX, arg CreateParticipantParams) (Participants, error) {
	row := db.QueryRow(ctx, createParticipant, arg.ReservationID, arg.UserID, arg.ManualName)
	var i Participants
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.UserID,
		&i.ManualName,
		&i.CreatedAt,
	)
	return i, err
}

const deleteParticipant = `-- name: DeleteParticipant :execrows
DELETE FROM participants WHERE id = $1
`

func (q *Queries) DeleteParticipant(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteParticipant, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteParticipantsByReservation = `-- name: DeleteParticipantsByReservation :execrows
DELETE FROM participants WHERE reservation_id = $1
`

func (q *Queries) DeleteParticipantsByReservation(ctx context.Context, db DBTX, reservationID int64) (int64, error) {
	result, err := db.Exec(ctx, deleteParticipantsByReservation, reservationID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getParticipant = `-- name: GetParticipant :one
SELECT id, reservation_id, user_id, manual_name, created_at FROM participants
WHERE id = $1
`

func (q *Queries) GetParticipant(ctx context.Context, db DBTX, id int64) (Participants, error) {
	row := db.QueryRow(ctx, getParticipant, id)
	var i Participants
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.UserID,
		&i.ManualName,
		&i.CreatedAt,
	)
	return i, err
}

const listParticipantsByReservation = `-- name: ListParticipantsByReservation :many
SELECT p.id, p.reservation_id, p.user_id, p.manual_name, p.created_at,
       u.name AS user_name, u.email AS user_email
FROM participants p
LEFT JOIN users u ON u.id = p.user_id
WHERE p.reservation_id = $1
ORDER BY p.id
`

type ListParticipantsByReservationRow struct {
	ID            int64              `json:"id"`
	ReservationID int64              `json:"reservation_id"`
	UserID        pgtype.Int8        `json:"user_id"`
	ManualName    pgtype.Text        `json:"manual_name"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UserName      pgtype.Text        `json:"user_name"`
	UserEmail     pgtype.Text        `json:"user_email"`
}

func (q *Queries) ListParticipantsByReservation(ctx context.Context, db DBTX, reservationID int64) ([]ListParticipantsByReservationRow, error) {
	rows, err := db.Query(ctx, listParticipantsByReservation, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListParticipantsByReservationRow
	for rows.Next() {
		var i ListParticipantsByReservationRow
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.UserID,
			&i.ManualName,
			&i.CreatedAt,
			&i.UserName,
			&i.UserEmail,
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

const participantNameExists = `-- name: ParticipantNameExists :one
SELECT EXISTS (
  SELECT 1 FROM participants WHERE reservation_id = $1 AND manual_name = $2
)
`

type ParticipantNameExistsParams struct {
	ReservationID int64  `json:"reservation_id"`
	ManualName    string `json:"manual_name"`
}

func (q *Queries) ParticipantNameExists(ctx context.Context, db DBTX, arg ParticipantNameExistsParams) (bool, error) {
	row := db.QueryRow(ctx, participantNameExists, arg.ReservationID, arg.ManualName)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const participantUserExists = `-- name: ParticipantUserExists :one
SELECT EXISTS (
  SELECT 1 FROM participants WHERE reservation_id = $1 AND user_id = $2
)
`

type ParticipantUserExistsParams struct {
	ReservationID int64 `json:"reservation_id"`
	UserID        int64 `json:"user_id"`
}

func (q *Queries) ParticipantUserExists(ctx context.Context, db DBTX, arg ParticipantUserExistsParams) (bool, error) {
	row := db.QueryRow(ctx, participantUserExists, arg.ReservationID, arg.UserID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
