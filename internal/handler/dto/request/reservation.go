package request

import (
	"bytes"
	"encoding/json"
	"time"

	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
)

type CreateReservationRequest struct {
	LocationID     int64     `json:"location_id" binding:"required,min=1"`
	RoomID         int64     `json:"room_id" binding:"required,min=1"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Responsible    string    `json:"responsible" binding:"required,max=150"`
	Coffee         *bool     `json:"coffee,omitempty"`
	CoffeeQuantity *int      `json:"coffee_quantity,omitempty"`
	Description    *string   `json:"description,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		LocationID:     r.LocationID,
		RoomID:         r.RoomID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Responsible:    r.Responsible,
		Coffee:         r.Coffee != nil && *r.Coffee,
		CoffeeQuantity: r.CoffeeQuantity,
		Description:    r.Description,
	}
}

// ReplaceReservationRequest is the PUT body. Core fields are mandatory.
type ReplaceReservationRequest struct {
	LocationID     *int64     `json:"location_id" binding:"required,min=1"`
	RoomID         *int64     `json:"room_id" binding:"required,min=1"`
	StartTime      *time.Time `json:"start_time" binding:"required"`
	EndTime        *time.Time `json:"end_time" binding:"required"`
	Responsible    *string    `json:"responsible" binding:"required,max=150"`
	Coffee         *bool      `json:"coffee,omitempty"`
	CoffeeQuantity *int       `json:"coffee_quantity,omitempty"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=1000"`
}

func (r ReplaceReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
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

// PatchReservationRequest is the PATCH body. Omitted fields keep their value.
type PatchReservationRequest struct {
	LocationID     *int64     `json:"location_id,omitempty" binding:"omitempty,min=1"`
	RoomID         *int64     `json:"room_id,omitempty" binding:"omitempty,min=1"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Responsible    *string    `json:"responsible,omitempty" binding:"omitempty,max=150"`
	Coffee         *bool      `json:"coffee,omitempty"`
	CoffeeQuantity *int       `json:"coffee_quantity,omitempty"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=1000"`

	// quantityCleared is set when the body carries "coffee_quantity": null.
	quantityCleared bool
}

func (r *PatchReservationRequest) UnmarshalJSON(data []byte) error {
	type fields PatchReservationRequest
	var decoded fields
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = PatchReservationRequest(decoded)
	if q, ok := raw["coffee_quantity"]; ok {
		r.quantityCleared = bytes.Equal(bytes.TrimSpace(q), []byte("null"))
	}
	return nil
}

func (r PatchReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		LocationID:          r.LocationID,
		RoomID:              r.RoomID,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		Responsible:         r.Responsible,
		Coffee:              r.Coffee,
		CoffeeQuantity:      r.CoffeeQuantity,
		ClearCoffeeQuantity: r.quantityCleared,
		Description:         r.Description,
	}
}

type ListReservationsQuery struct {
	Start       *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End         *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	RoomID      *int64     `form:"room_id" binding:"omitempty,min=1"`
	LocationID  *int64     `form:"location_id" binding:"omitempty,min=1"`
	Room        *string    `form:"room"`
	Location    *string    `form:"location"`
	Responsible *string    `form:"responsible"`
	Skip        int        `form:"skip" binding:"omitempty,min=0"`
	Limit       int        `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListReservationsQuery) ToFilter() queries.ReservationFilter {
	return queries.ReservationFilter{
		Start:        q.Start,
		End:          q.End,
		RoomID:       q.RoomID,
		LocationID:   q.LocationID,
		RoomName:     q.Room,
		LocationName: q.Location,
		Responsible:  q.Responsible,
	}
}
