package converter

import (
	"room-reservation/internal/domain/participant"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

func ParticipantToCreateParams(p *participant.Participant) sqlc.CreateParticipantParams {
	return sqlc.CreateParticipantParams{
		ReservationID: p.ReservationID(),
		UserID:        pgconv.Int64PtrToPgtype(p.UserID()),
		ManualName:    pgconv.StringPtrToPgtype(p.ManualName()),
	}
}

func ParticipantFromRow(row sqlc.Participants) *participant.Participant {
	return participant.ReconstructParticipant(
		row.ID,
		row.ReservationID,
		pgconv.Int64PtrFromPgtype(row.UserID),
		pgconv.StringPtrFromPgtype(row.ManualName),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
