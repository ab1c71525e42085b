package shared

import (
	"context"
	"time"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/domain/participant"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra/sqlc"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Locations() LocationRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Participants() ParticipantRepository
	Users() UserRepository
}

type LocationRepository interface {
	FindByID(ctx context.Context, id int64, vis Visibility) (*location.Location, error)
	NameExists(ctx context.Context, name string, excludeID *int64) (bool, error)
	Create(ctx context.Context, loc *location.Location) (*location.Location, error)
	Update(ctx context.Context, loc *location.Location) (*location.Location, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64, vis Visibility) (*room.Room, error)
	// Lock takes a row lock on the room until the transaction ends.
	Lock(ctx context.Context, id int64, vis Visibility) (*room.Room, error)
	NameExists(ctx context.Context, locationID int64, name string, excludeID *int64) (bool, error)
	Create(ctx context.Context, rm *room.Room) (*room.Room, error)
	Update(ctx context.Context, rm *room.Room) (*room.Room, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error)
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id int64, vis Visibility) (*reservation.Reservation, error)
	// ListOverlapping returns non-deleted reservations of the room that
	// overlap the slot, ordered by id.
	ListOverlapping(ctx context.Context, roomID int64, slot reservation.TimeSlot) ([]*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error)
}

type ParticipantRepository interface {
	FindByID(ctx context.Context, id int64) (*participant.Participant, error)
	UserExists(ctx context.Context, reservationID, userID int64) (bool, error)
	NameExists(ctx context.Context, reservationID int64, name string) (bool, error)
	Create(ctx context.Context, p *participant.Participant) (*participant.Participant, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByReservation(ctx context.Context, reservationID int64) (int64, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	UpdateLogin(ctx context.Context, u *user.User) (*user.User, error)
}
