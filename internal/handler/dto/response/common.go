package response

import (
	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedCountResponse struct {
	Deleted int64 `json:"deleted"`
}

// copyList maps a page of views onto response items field by field.
func copyList[V any, R any](res *queries.ListResult[V]) (*ListResponse[R], error) {
	items := make([]R, 0, len(res.Items))
	if err := copier.Copy(&items, res.Items); err != nil {
		return nil, err
	}
	return &ListResponse[R]{
		Items: items,
		Total: res.Total,
		Skip:  res.Skip,
		Limit: res.Limit,
	}, nil
}
