//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/usecase/queries"
)

type RoomBuilder struct {
	ID         int64
	LocationID int64
	Name       string
	Capacity   *int
	Resources  *string
	Active     bool
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

func NewRoomBuilder() *RoomBuilder {
	capacity := 10
	return &RoomBuilder{
		ID:         1,
		LocationID: 1,
		Name:       "Room 101",
		Capacity:   &capacity,
		Active:     true,
		CreatedAt:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.LocationID, r.Name, r.Capacity, r.Resources, r.Active)
}

func (r *RoomBuilder) BuildStored() *room.Room {
	return room.ReconstructRoom(r.ID, r.LocationID, r.Name, r.Capacity, r.Resources, r.Active, r.CreatedAt, r.CreatedAt, r.DeletedAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:         r.ID,
		LocationID: r.LocationID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Resources:  r.Resources,
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
	}
}

func (r *RoomBuilder) WithID(id int64) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithLocationID(id int64) *RoomBuilder {
	r.LocationID = id
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}
