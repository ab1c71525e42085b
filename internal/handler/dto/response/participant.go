package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ParticipantResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	UserID        *int64    `json:"user_id,omitempty"`
	ManualName    *string   `json:"manual_name,omitempty"`
	UserName      *string   `json:"user_name,omitempty"`
	UserEmail     *string   `json:"user_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromParticipantViews(views []*queries.ParticipantView) ([]ParticipantResponse, error) {
	res := make([]ParticipantResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}
