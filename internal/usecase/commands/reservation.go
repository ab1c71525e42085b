package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/shared"
)

type CreateReservationInput struct {
	LocationID     int64
	RoomID         int64
	StartTime      time.Time
	EndTime        time.Time
	Responsible    string
	Coffee         bool
	CoffeeQuantity *int
	Description    *string
}

// UpdateReservationInput leaves nil fields at their stored value.
type UpdateReservationInput struct {
	LocationID     *int64
	RoomID         *int64
	StartTime      *time.Time
	EndTime        *time.Time
	Responsible    *string
	Coffee         *bool
	CoffeeQuantity *int
	// ClearCoffeeQuantity drops the stored quantity instead of inheriting it.
	ClearCoffeeQuantity bool
	Description         *string
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput, actor string) (*reservation.Reservation, error)
	Update(ctx context.Context, id int64, in UpdateReservationInput, actor string) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64, actor string) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		clock:              clock,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput, actor string) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	coffee, err := reservation.NewCoffee(in.Coffee, in.CoffeeQuantity)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		placement, derr := r.resolvePlacement(ctx, tx, in.LocationID, in.RoomID)
		if derr != nil {
			return derr
		}

		res, derr := r.reservationFactory.CreateReservation(
			placement,
			slot,
			in.Responsible,
			coffee,
			in.Description,
			ptr.TrimmedString(&actor),
		)
		if derr != nil {
			return derr
		}

		if derr = ensureRoomFree(ctx, tx, in.RoomID, slot, nil); derr != nil {
			return derr
		}

		created, derr = tx.Reservations().Create(ctx, res)
		return conflictAs(derr)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"room_id", created.RoomID(),
		"start_time", slot.Start(),
		"end_time", slot.End())
	return created, nil
}

func (r *reservationCommandsImpl) Update(ctx context.Context, id int64, in UpdateReservationInput, actor string) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByID(ctx, id, shared.VisibleOnly)
		if derr != nil {
			return notFoundAs(derr, reservation.ErrNotFound)
		}
		if derr = res.AuthorizeChange(actor); derr != nil {
			return derr
		}

		locationID := ptr.Deref(in.LocationID, res.LocationID())
		roomID := ptr.Deref(in.RoomID, res.RoomID())
		slot, derr := reservation.NewTimeSlot(
			ptr.Deref(in.StartTime, res.TimeSlot().Start()),
			ptr.Deref(in.EndTime, res.TimeSlot().End()),
		)
		if derr != nil {
			return derr
		}
		if derr = slot.EnsureNotPast(r.clock.Now()); derr != nil {
			return derr
		}

		if locationID != res.LocationID() || roomID != res.RoomID() {
			placement, derr := r.resolvePlacement(ctx, tx, locationID, roomID)
			if derr != nil {
				return derr
			}
			res.Relocate(placement)
		} else if _, derr = tx.Rooms().Lock(ctx, roomID, shared.IncludeDeleted); derr != nil {
			return notFoundAs(derr, room.ErrNotFound)
		}

		if derr = ensureRoomFree(ctx, tx, roomID, slot, &id); derr != nil {
			return derr
		}
		res.Reschedule(slot)

		coffee, derr := reservation.NewCoffee(
			ptr.Deref(in.Coffee, res.Coffee().Requested()),
			coffeeQuantity(in, res.Coffee()),
		)
		if derr != nil {
			return derr
		}
		res.SetCoffee(coffee)

		if in.Responsible != nil {
			if derr = res.SetResponsible(*in.Responsible); derr != nil {
				return derr
			}
		}
		if in.Description != nil {
			if derr = res.SetDescription(in.Description); derr != nil {
				return derr
			}
		}

		updated, derr = tx.Reservations().Update(ctx, res)
		if derr != nil {
			return conflictAs(notFoundAs(derr, reservation.ErrNotFound))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id int64, actor string) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id, shared.VisibleOnly)
		if err != nil {
			return notFoundAs(err, reservation.ErrNotFound)
		}
		if err = res.AuthorizeChange(actor); err != nil {
			return err
		}

		deleted, err := tx.Reservations().SoftDelete(ctx, id, r.clock.Now())
		if err != nil {
			return err
		}
		if !deleted {
			return reservation.ErrNotFound
		}
		return nil
	})
}

// resolvePlacement loads the location, locks the room and checks that the
// room belongs to the location.
func (r *reservationCommandsImpl) resolvePlacement(ctx context.Context, tx shared.Tx, locationID, roomID int64) (reservation.Placement, error) {
	loc, err := tx.Locations().FindByID(ctx, locationID, shared.VisibleOnly)
	if err != nil {
		return reservation.Placement{}, notFoundAs(err, location.ErrNotFound)
	}
	rm, err := tx.Rooms().Lock(ctx, roomID, shared.VisibleOnly)
	if err != nil {
		return reservation.Placement{}, notFoundAs(err, room.ErrNotFound)
	}
	return reservation.NewPlacement(loc, rm)
}

func ensureRoomFree(ctx context.Context, tx shared.Tx, roomID int64, slot reservation.TimeSlot, exclude *int64) error {
	existing, err := tx.Reservations().ListOverlapping(ctx, roomID, slot)
	if err != nil {
		return err
	}
	if conflict := reservation.FindConflict(existing, roomID, slot, exclude); conflict != nil {
		slog.Debug("reservation time conflict",
			"room_id", roomID,
			"conflicting_reservation_id", conflict.ID())
		return reservation.ErrTimeConflict
	}
	return nil
}

// coffeeQuantity keeps the stored quantity unless a new one is given.
// Turning coffee off drops it in NewCoffee.
func coffeeQuantity(in UpdateReservationInput, prior reservation.Coffee) *int {
	if in.ClearCoffeeQuantity {
		return nil
	}
	if in.CoffeeQuantity != nil {
		return in.CoffeeQuantity
	}
	return prior.Quantity()
}

// conflictAs maps an exclusion constraint violation to ErrTimeConflict.
func conflictAs(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return reservation.ErrTimeConflict
	}
	return err
}
