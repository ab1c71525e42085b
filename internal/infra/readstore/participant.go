package readstore

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
)

type ParticipantReadQueries interface {
	ListParticipantsByReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]sqlc.ListParticipantsByReservationRow, error)
}

type ParticipantReadStore struct {
	queries ParticipantReadQueries
	db      sqlc.DBTX
}

func NewParticipantReadStore(queries ParticipantReadQueries, db sqlc.DBTX) *ParticipantReadStore {
	return &ParticipantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipantReadStore) WithDB(db sqlc.DBTX) queries.ParticipantReadStore {
	return &ParticipantReadStore{queries: r.queries, db: db}
}

func (r *ParticipantReadStore) ListByReservation(ctx context.Context, reservationID int64) ([]*queries.ParticipantView, error) {
	rows, err := r.queries.ListParticipantsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants", err)
	}

	result := make([]*queries.ParticipantView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ParticipantView{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			UserID:        pgconv.Int64PtrFromPgtype(row.UserID),
			ManualName:    pgconv.StringPtrFromPgtype(row.ManualName),
			UserName:      pgconv.StringPtrFromPgtype(row.UserName),
			UserEmail:     pgconv.StringPtrFromPgtype(row.UserEmail),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
