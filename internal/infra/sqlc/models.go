package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Locations struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description pgtype.Text        `json:"description"`
	Active      bool               `json:"active"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
	DeletedAt   pgtype.Timestamptz `json:"deleted_at"`
}

type Rooms struct {
	ID         int64              `json:"id"`
	LocationID int64              `json:"location_id"`
	Name       string             `json:"name"`
	Capacity   pgtype.Int4        `json:"capacity"`
	Resources  pgtype.Text        `json:"resources"`
	Active     bool               `json:"active"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
	DeletedAt  pgtype.Timestamptz `json:"deleted_at"`
}

type Reservations struct {
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
	CreatedBy      pgtype.Text        `json:"created_by"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
	DeletedAt      pgtype.Timestamptz `json:"deleted_at"`
}

type Participants struct {
	ID            int64              `json:"id"`
	ReservationID int64              `json:"reservation_id"`
	UserID        pgtype.Int8        `json:"user_id"`
	ManualName    pgtype.Text        `json:"manual_name"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID          int64              `json:"id"`
	ExternalID  string             `json:"external_id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	AvatarUrl   pgtype.Text        `json:"avatar_url"`
	LastLoginAt pgtype.Timestamptz `json:"last_login_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}
