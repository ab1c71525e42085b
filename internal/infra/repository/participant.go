package repository

import (
	"context"

	"room-reservation/internal/domain/participant"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

type ParticipantWriteQueries interface {
	GetParticipant(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Participants, error)
	ParticipantUserExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ParticipantUserExistsParams) (bool, error)
	ParticipantNameExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ParticipantNameExistsParams) (bool, error)
	CreateParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParticipantParams) (sqlc.Participants, error)
	DeleteParticipant(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	DeleteParticipantsByReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (int64, error)
}

type ParticipantRepository struct {
	queries ParticipantWriteQueries
	db      sqlc.DBTX
}

func NewParticipantRepository(queries ParticipantWriteQueries, db sqlc.DBTX) *ParticipantRepository {
	return &ParticipantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id int64) (*participant.Participant, error) {
	row, err := r.queries.GetParticipant(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find participant by ID", err)
	}
	return converter.ParticipantFromRow(row), nil
}

func (r *ParticipantRepository) UserExists(ctx context.Context, reservationID, userID int64) (bool, error) {
	exists, err := r.queries.ParticipantUserExists(ctx, r.db, sqlc.ParticipantUserExistsParams{
		ReservationID: reservationID,
		UserID:        userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check participant user", err)
	}
	return exists, nil
}

func (r *ParticipantRepository) NameExists(ctx context.Context, reservationID int64, name string) (bool, error) {
	exists, err := r.queries.ParticipantNameExists(ctx, r.db, sqlc.ParticipantNameExistsParams{
		ReservationID: reservationID,
		ManualName:    name,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check participant name", err)
	}
	return exists, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, p *participant.Participant) (*participant.Participant, error) {
	row, err := r.queries.CreateParticipant(ctx, r.db, converter.ParticipantToCreateParams(p))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create participant", err)
	}
	return converter.ParticipantFromRow(row), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteParticipant(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete participant", err)
	}
	return n > 0, nil
}

func (r *ParticipantRepository) DeleteByReservation(ctx context.Context, reservationID int64) (int64, error) {
	n, err := r.queries.DeleteParticipantsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete participants of reservation", err)
	}
	return n, nil
}
