package queries

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"
)

var ErrInvalidDateRange = errs.NewKind("the start of the date range must not be after its end", errs.ErrInvalidTemporal)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, page Page) ([]*ReservationView, error)
	Count(ctx context.Context, filter ReservationFilter) (int64, error)
	// WithDB returns a store that reads through db.
	WithDB(db sqlc.DBTX) ReservationReadStore
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, page Page) (*ListResult[*ReservationView], error)
}

type reservationQueriesImpl struct {
	uow   shared.UnitOfWork
	store ReservationReadStore
}

func NewReservationQueries(uow shared.UnitOfWork, store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	return findReservation(ctx, q.store, id)
}

func findReservation(ctx context.Context, store ReservationReadStore, id int64) (*ReservationView, error) {
	view, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, page Page) (*ListResult[*ReservationView], error) {
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return nil, ErrInvalidDateRange
	}

	page = NewPage(page.Skip, page.Limit)
	var (
		items []*ReservationView
		total int64
	)
	// Items and total come from one snapshot so a concurrent insert cannot skew them.
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		store := q.store.WithDB(db)
		var err error
		if items, err = store.List(ctx, filter, page); err != nil {
			return err
		}
		total, err = store.Count(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ListResult[*ReservationView]{Items: items, Total: total, Skip: page.Skip, Limit: page.Limit}, nil
}
