package repository

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
)

type ReservationWriteQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationParams) (sqlc.Reservations, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.Reservations, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (sqlc.Reservations, error)
	SoftDeleteReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64, vis shared.Visibility) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, sqlc.GetReservationParams{
		ID:             id,
		IncludeDeleted: vis.IncludesDeleted(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) ListOverlapping(ctx context.Context, roomID int64, slot reservation.TimeSlot) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListOverlappingReservations(ctx, r.db, sqlc.ListOverlappingReservationsParams{
		RoomID:    roomID,
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	return converter.ReservationsFromRows(rows), nil
}

// Create maps an exclusion constraint violation to KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	n, err := r.queries.SoftDeleteReservation(ctx, r.db, sqlc.SoftDeleteReservationParams{
		ID:        id,
		DeletedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return n > 0, nil
}
