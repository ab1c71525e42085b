package request

import (
	"room-reservation/internal/usecase/commands"
)

// CreateParticipantRequest takes exactly one of UserID and ManualName.
type CreateParticipantRequest struct {
	ReservationID int64   `json:"reservation_id" binding:"required,min=1"`
	UserID        *int64  `json:"user_id,omitempty" binding:"omitempty,min=1"`
	ManualName    *string `json:"manual_name,omitempty" binding:"omitempty,max=255"`
}

func (r CreateParticipantRequest) ToInput() commands.CreateParticipantInput {
	return commands.CreateParticipantInput{
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		ManualName:    r.ManualName,
	}
}
