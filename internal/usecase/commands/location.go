package commands

import (
	"context"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/shared"
)

type CreateLocationInput struct {
	Name        string
	Description *string
	Active      *bool
}

// UpdateLocationInput leaves nil fields unchanged.
type UpdateLocationInput struct {
	Name        *string
	Description *string
	Active      *bool
}

type LocationCommands interface {
	Create(ctx context.Context, in CreateLocationInput) (*location.Location, error)
	Update(ctx context.Context, id int64, in UpdateLocationInput) (*location.Location, error)
	Delete(ctx context.Context, id int64) error
}

type locationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLocationCommands(uow shared.UnitOfWork, clk clock.Clock) LocationCommands {
	return &locationCommandsImpl{uow: uow, clock: clk}
}

func (c *locationCommandsImpl) Create(ctx context.Context, in CreateLocationInput) (*location.Location, error) {
	loc, err := location.NewLocation(in.Name, in.Description, ptr.Deref(in.Active, true))
	if err != nil {
		return nil, err
	}

	var created *location.Location
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Locations().NameExists(ctx, loc.Name(), nil)
		if derr != nil {
			return derr
		}
		if taken {
			return location.ErrNameTaken
		}

		created, derr = tx.Locations().Create(ctx, loc)
		return duplicateAs(derr, location.ErrNameTaken)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *locationCommandsImpl) Update(ctx context.Context, id int64, in UpdateLocationInput) (*location.Location, error) {
	var updated *location.Location
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, derr := tx.Locations().FindByID(ctx, id, shared.VisibleOnly)
		if derr != nil {
			return notFoundAs(derr, location.ErrNotFound)
		}

		if in.Name != nil {
			previous := loc.Name()
			if derr = loc.Rename(*in.Name); derr != nil {
				return derr
			}
			if loc.Name() != previous {
				taken, derr := tx.Locations().NameExists(ctx, loc.Name(), &id)
				if derr != nil {
					return derr
				}
				if taken {
					return location.ErrNameTaken
				}
			}
		}
		if in.Description != nil {
			if derr = loc.SetDescription(in.Description); derr != nil {
				return derr
			}
		}
		if in.Active != nil {
			loc.SetActive(*in.Active)
		}

		updated, derr = tx.Locations().Update(ctx, loc)
		if derr != nil {
			return duplicateAs(notFoundAs(derr, location.ErrNotFound), location.ErrNameTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete stamps deleted_at. Deleting twice reports location.ErrNotFound.
func (c *locationCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Locations().SoftDelete(ctx, id, c.clock.Now())
		if err != nil {
			return err
		}
		if !deleted {
			return location.ErrNotFound
		}
		return nil
	})
}
