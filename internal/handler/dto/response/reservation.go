package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             int64     `json:"id"`
	LocationID     int64     `json:"location_id"`
	RoomID         int64     `json:"room_id"`
	LocationName   string    `json:"location_name"`
	RoomName       string    `json:"room_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Responsible    string    `json:"responsible"`
	Coffee         bool      `json:"coffee"`
	CoffeeQuantity *int      `json:"coffee_quantity,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedBy      *string   `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReservationList(list *queries.ListResult[*queries.ReservationView]) (*ListResponse[ReservationResponse], error) {
	return copyList[*queries.ReservationView, ReservationResponse](list)
}
