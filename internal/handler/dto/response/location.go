package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LocationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLocationView(v *queries.LocationView) (*LocationResponse, error) {
	var res LocationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromLocationList(list *queries.ListResult[*queries.LocationView]) (*ListResponse[LocationResponse], error) {
	return copyList[*queries.LocationView, LocationResponse](list)
}
