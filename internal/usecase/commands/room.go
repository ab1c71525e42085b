package commands

import (
	"context"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/shared"
)

type CreateRoomInput struct {
	LocationID int64
	Name       string
	Capacity   *int
	Resources  *string
	Active     *bool
}

// UpdateRoomInput leaves nil fields unchanged.
type UpdateRoomInput struct {
	LocationID *int64
	Name       *string
	Capacity   *int
	Resources  *string
	Active     *bool
}

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (*room.Room, error)
	Update(ctx context.Context, id int64, in UpdateRoomInput) (*room.Room, error)
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, clock: clk}
}

func (c *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (*room.Room, error) {
	rm, err := room.NewRoom(in.LocationID, in.Name, in.Capacity, in.Resources, ptr.Deref(in.Active, true))
	if err != nil {
		return nil, err
	}

	var created *room.Room
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Locations().FindByID(ctx, in.LocationID, shared.VisibleOnly); derr != nil {
			return notFoundAs(derr, location.ErrNotFound)
		}

		taken, derr := tx.Rooms().NameExists(ctx, in.LocationID, rm.Name(), nil)
		if derr != nil {
			return derr
		}
		if taken {
			return room.ErrNameTaken
		}

		created, derr = tx.Rooms().Create(ctx, rm)
		return duplicateAs(derr, room.ErrNameTaken)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id int64, in UpdateRoomInput) (*room.Room, error) {
	var updated *room.Room
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := tx.Rooms().FindByID(ctx, id, shared.VisibleOnly)
		if derr != nil {
			return notFoundAs(derr, room.ErrNotFound)
		}

		moved := false
		if in.LocationID != nil {
			if _, derr = tx.Locations().FindByID(ctx, *in.LocationID, shared.VisibleOnly); derr != nil {
				return notFoundAs(derr, location.ErrNotFound)
			}
			moved = !rm.BelongsTo(*in.LocationID)
			rm.MoveTo(*in.LocationID)
		}

		renamed := false
		if in.Name != nil {
			previous := rm.Name()
			if derr = rm.Rename(*in.Name); derr != nil {
				return derr
			}
			renamed = rm.Name() != previous
		}

		if moved || renamed {
			taken, derr := tx.Rooms().NameExists(ctx, rm.LocationID(), rm.Name(), &id)
			if derr != nil {
				return derr
			}
			if taken {
				return room.ErrNameTaken
			}
		}

		if in.Capacity != nil {
			if derr = rm.SetCapacity(in.Capacity); derr != nil {
				return derr
			}
		}
		if in.Resources != nil {
			if derr = rm.SetResources(in.Resources); derr != nil {
				return derr
			}
		}
		if in.Active != nil {
			rm.SetActive(*in.Active)
		}

		updated, derr = tx.Rooms().Update(ctx, rm)
		if derr != nil {
			return duplicateAs(notFoundAs(derr, room.ErrNotFound), room.ErrNameTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete stamps deleted_at. Deleting twice reports room.ErrNotFound.
func (c *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Rooms().SoftDelete(ctx, id, c.clock.Now())
		if err != nil {
			return err
		}
		if !deleted {
			return room.ErrNotFound
		}
		return nil
	})
}
