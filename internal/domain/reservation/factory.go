package reservation

import (
	"room-reservation/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{
		Clock: clock,
	}
}

// CreateReservation builds a new reservation starting no earlier than now.
// Name snapshots come from the placement.
func (f *Factory) CreateReservation(
	placement Placement,
	slot TimeSlot,
	responsible string,
	coffee Coffee,
	description *string,
	createdBy *string,
) (*Reservation, error) {
	if err := slot.EnsureNotPast(f.Clock.Now()); err != nil {
		return nil, err
	}
	n, err := NormalizeResponsible(responsible)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	return &Reservation{
		placement:   placement,
		timeSlot:    slot,
		responsible: n,
		coffee:      coffee,
		description: description,
		createdBy:   createdBy,
	}, nil
}
