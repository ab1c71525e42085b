//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID             int64
	LocationID     int64
	LocationName   string
	RoomID         int64
	RoomName       string
	StartTime      time.Time
	EndTime        time.Time
	Responsible    string
	Coffee         bool
	CoffeeQuantity *int
	Description    *string
	CreatedBy      *string
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	creator := "owner@example.com"
	return &ReservationBuilder{
		ID:           1,
		LocationID:   1,
		LocationName: "Building A",
		RoomID:       1,
		RoomName:     "Room 101",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Responsible:  "Alice",
		CreatedBy:    &creator,
		CreatedAt:    start.Add(-24 * time.Hour),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) placement() reservation.Placement {
	return reservation.Placement{
		LocationID:   r.LocationID,
		LocationName: r.LocationName,
		RoomID:       r.RoomID,
		RoomName:     r.RoomName,
	}
}

// BuildStored returns the reservation as loaded from storage.
func (r *ReservationBuilder) BuildStored() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID,
		r.placement(),
		reservation.ReconstructTimeSlot(r.StartTime, r.EndTime),
		r.Responsible,
		reservation.ReconstructCoffee(r.Coffee, r.CoffeeQuantity),
		r.Description,
		r.CreatedBy,
		r.CreatedAt,
		r.CreatedAt,
		r.DeletedAt,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		LocationID:     r.LocationID,
		RoomID:         r.RoomID,
		LocationName:   r.LocationName,
		RoomName:       r.RoomName,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Responsible:    r.Responsible,
		Coffee:         r.Coffee,
		CoffeeQuantity: r.CoffeeQuantity,
		Description:    r.Description,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		LocationID:     r.LocationID,
		RoomID:         r.RoomID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Responsible:    r.Responsible,
		Coffee:         r.Coffee,
		CoffeeQuantity: r.CoffeeQuantity,
		Description:    r.Description,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	coffee := r.Coffee
	return reqdto.CreateReservationRequest{
		LocationID:     r.LocationID,
		RoomID:         r.RoomID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Responsible:    r.Responsible,
		Coffee:         &coffee,
		CoffeeQuantity: r.CoffeeQuantity,
		Description:    r.Description,
	}
}

func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithRoomID(id int64) *ReservationBuilder {
	r.RoomID = id
	return r
}

// WithSlot sets the slot from a start and a length.
func (r *ReservationBuilder) WithSlot(start time.Time, d time.Duration) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = start.Add(d)
	return r
}

func (r *ReservationBuilder) WithCoffee(quantity int) *ReservationBuilder {
	r.Coffee = true
	r.CoffeeQuantity = &quantity
	return r
}

func (r *ReservationBuilder) WithCreatedBy(email *string) *ReservationBuilder {
	r.CreatedBy = email
	return r
}

func (r *ReservationBuilder) AsDeleted() *ReservationBuilder {
	at := r.CreatedAt.Add(time.Hour)
	r.DeletedAt = &at
	return r
}
