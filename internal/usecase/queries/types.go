package queries

import (
	"time"
)

// LocationView represents read-optimized location data
type LocationView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomView represents read-optimized room data
type RoomView struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	Name       string    `json:"name"`
	Capacity   *int      `json:"capacity,omitempty"`
	Resources  *string   `json:"resources,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReservationView carries the location and room names captured at booking time.
type ReservationView struct {
	ID             int64     `json:"id"`
	LocationID     int64     `json:"location_id"`
	RoomID         int64     `json:"room_id"`
	LocationName   string    `json:"location_name"`
	RoomName       string    `json:"room_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Responsible    string    `json:"responsible"`
	Coffee         bool      `json:"coffee"`
	CoffeeQuantity *int      `json:"coffee_quantity,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedBy      *string   `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ParticipantView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	UserID        *int64    `json:"user_id,omitempty"`
	ManualName    *string   `json:"manual_name,omitempty"`
	UserName      *string   `json:"user_name,omitempty"`
	UserEmail     *string   `json:"user_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserView struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LocationFilter struct {
	Active *bool
}

type RoomFilter struct {
	LocationID  *int64
	Active      *bool
	MinCapacity *int
}

// ReservationFilter narrows the listing. With both Start and End set the
// reservations overlapping that interval are returned; with only one of them
// it acts as a lower bound on start or an upper bound on end.
type ReservationFilter struct {
	Start        *time.Time
	End          *time.Time
	RoomID       *int64
	LocationID   *int64
	RoomName     *string
	LocationName *string
	Responsible  *string
}
