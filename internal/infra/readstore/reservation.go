package readstore

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationParams) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservations, error)
	CountReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) WithDB(db sqlc.DBTX) queries.ReservationReadStore {
	return &ReservationReadStore{queries: r.queries, db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, sqlc.GetReservationParams{ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, page queries.Page) ([]*queries.ReservationView, error) {
	c := toCountParams(filter)
	offset, limit := pageBounds(page)
	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{
		RoomID:       c.RoomID,
		LocationID:   c.LocationID,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		RoomName:     c.RoomName,
		LocationName: c.LocationName,
		Responsible:  c.Responsible,
		Offset:       offset,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func (r *ReservationReadStore) Count(ctx context.Context, filter queries.ReservationFilter) (int64, error) {
	n, err := r.queries.CountReservations(ctx, r.db, toCountParams(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func toCountParams(filter queries.ReservationFilter) sqlc.CountReservationsParams {
	return sqlc.CountReservationsParams{
		RoomID:       pgconv.Int64PtrToPgtype(filter.RoomID),
		LocationID:   pgconv.Int64PtrToPgtype(filter.LocationID),
		StartTime:    pgconv.TimePtrToPgtype(filter.Start),
		EndTime:      pgconv.TimePtrToPgtype(filter.End),
		RoomName:     pgconv.StringPtrToPgtype(ptr.TrimmedString(filter.RoomName)),
		LocationName: pgconv.StringPtrToPgtype(ptr.TrimmedString(filter.LocationName)),
		Responsible:  pgconv.StringPtrToPgtype(ptr.TrimmedString(filter.Responsible)),
	}
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		LocationID:     row.LocationID,
		RoomID:         row.RoomID,
		LocationName:   row.LocationName,
		RoomName:       row.RoomName,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		Responsible:    row.Responsible,
		Coffee:         row.Coffee,
		CoffeeQuantity: pgconv.IntPtrFromPgtype(row.CoffeeQuantity),
		Description:    pgconv.StringPtrFromPgtype(row.Description),
		CreatedBy:      pgconv.StringPtrFromPgtype(row.CreatedBy),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
