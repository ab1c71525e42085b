package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromUserViews(views []*queries.UserView) ([]UserResponse, error) {
	res := make([]UserResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromUserList(list *queries.ListResult[*queries.UserView]) (*ListResponse[UserResponse], error) {
	return copyList[*queries.UserView, UserResponse](list)
}
