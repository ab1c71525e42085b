package queries

import (
	"context"

	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/usecase/shared"
)

type ParticipantReadStore interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*ParticipantView, error)
	WithDB(db sqlc.DBTX) ParticipantReadStore
}

type ParticipantQueries interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*ParticipantView, error)
}

type participantQueriesImpl struct {
	uow          shared.UnitOfWork
	store        ParticipantReadStore
	reservations ReservationReadStore
}

func NewParticipantQueries(uow shared.UnitOfWork, store ParticipantReadStore, reservations ReservationReadStore) ParticipantQueries {
	return &participantQueriesImpl{uow: uow, store: store, reservations: reservations}
}

// ListByReservation fails with reservation.ErrNotFound for unknown or deleted reservations.
func (q *participantQueriesImpl) ListByReservation(ctx context.Context, reservationID int64) ([]*ParticipantView, error) {
	var views []*ParticipantView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := findReservation(ctx, q.reservations.WithDB(db), reservationID); err != nil {
			return err
		}
		var err error
		views, err = q.store.WithDB(db).ListByReservation(ctx, reservationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
