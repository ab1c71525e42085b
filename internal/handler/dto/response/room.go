package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	Name       string    `json:"name"`
	Capacity   *int      `json:"capacity,omitempty"`
	Resources  *string   `json:"resources,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomList(list *queries.ListResult[*queries.RoomView]) (*ListResponse[RoomResponse], error) {
	return copyList[*queries.RoomView, RoomResponse](list)
}
