package request

import (
	"room-reservation/internal/usecase/commands"
)

type CreateRoomRequest struct {
	LocationID int64   `json:"location_id" binding:"required,min=1"`
	Name       string  `json:"name" binding:"required,max=100"`
	Capacity   *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	Resources  *string `json:"resources,omitempty" binding:"omitempty,max=1000"`
	Active     *bool   `json:"active,omitempty"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		LocationID: r.LocationID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Resources:  r.Resources,
		Active:     r.Active,
	}
}

type UpdateRoomRequest struct {
	LocationID *int64  `json:"location_id,omitempty" binding:"omitempty,min=1"`
	Name       *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Capacity   *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	Resources  *string `json:"resources,omitempty" binding:"omitempty,max=1000"`
	Active     *bool   `json:"active,omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		LocationID: r.LocationID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Resources:  r.Resources,
		Active:     r.Active,
	}
}

type ListRoomsQuery struct {
	LocationID  *int64 `form:"location_id" binding:"omitempty,min=1"`
	Active      *bool  `form:"active"`
	MinCapacity *int   `form:"min_capacity" binding:"omitempty,min=1"`
	Skip        int    `form:"skip" binding:"omitempty,min=0"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
