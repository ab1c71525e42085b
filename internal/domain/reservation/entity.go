package reservation

import (
	"time"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/errs"
)

var (
	ErrNotFound             = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrTimeConflict         = errs.NewKind("the room is already booked for an overlapping period", errs.ErrConflict)
	ErrRoomLocationMismatch = errs.NewKind("the room does not belong to the given location", errs.ErrInvalidRelationship)
	ErrNotCreator           = errs.NewKind("only the creator of the reservation can change it", errs.ErrForbidden)
)

// Placement is the room a reservation is booked in, with the display names
// captured at the time of booking.
type Placement struct {
	LocationID   int64
	LocationName string
	RoomID       int64
	RoomName     string
}

func NewPlacement(loc *location.Location, rm *room.Room) (Placement, error) {
	if !rm.BelongsTo(loc.ID()) {
		return Placement{}, ErrRoomLocationMismatch
	}
	return Placement{
		LocationID:   loc.ID(),
		LocationName: loc.Name(),
		RoomID:       rm.ID(),
		RoomName:     rm.Name(),
	}, nil
}

type Reservation struct {
	id          int64
	placement   Placement
	timeSlot    TimeSlot
	responsible string
	coffee      Coffee
	description *string
	createdBy   *string
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

func ReconstructReservation(
	id int64,
	placement Placement,
	timeSlot TimeSlot,
	responsible string,
	coffee Coffee,
	description *string,
	createdBy *string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		placement:   placement,
		timeSlot:    timeSlot,
		responsible: responsible,
		coffee:      coffee,
		description: description,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

// AuthorizeChange allows anyone when no creator was recorded.
func (r *Reservation) AuthorizeChange(actor string) error {
	if r.createdBy != nil && *r.createdBy != actor {
		return ErrNotCreator
	}
	return nil
}

func (r *Reservation) Relocate(p Placement) {
	r.placement = p
}

func (r *Reservation) Reschedule(slot TimeSlot) {
	r.timeSlot = slot
}

func (r *Reservation) SetResponsible(responsible string) error {
	n, err := NormalizeResponsible(responsible)
	if err != nil {
		return err
	}
	r.responsible = n
	return nil
}

func (r *Reservation) SetCoffee(c Coffee) {
	r.coffee = c
}

func (r *Reservation) SetDescription(description *string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	r.description = description
	return nil
}

func (r *Reservation) IsDeleted() bool {
	return r.deletedAt != nil
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) Placement() Placement  { return r.placement }
func (r *Reservation) LocationID() int64     { return r.placement.LocationID }
func (r *Reservation) RoomID() int64         { return r.placement.RoomID }
func (r *Reservation) LocationName() string  { return r.placement.LocationName }
func (r *Reservation) RoomName() string      { return r.placement.RoomName }
func (r *Reservation) TimeSlot() TimeSlot    { return r.timeSlot }
func (r *Reservation) Responsible() string   { return r.responsible }
func (r *Reservation) Coffee() Coffee        { return r.coffee }
func (r *Reservation) Description() *string  { return r.description }
func (r *Reservation) CreatedBy() *string    { return r.createdBy }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Reservation) DeletedAt() *time.Time { return r.deletedAt }
