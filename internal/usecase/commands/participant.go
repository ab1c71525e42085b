package commands

import (
	"context"

	"room-reservation/internal/domain/participant"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/shared"
)

const (
	uniqueParticipantUser = "uq_participants_reservation_user"
	uniqueParticipantName = "uq_participants_reservation_name"
)

type CreateParticipantInput struct {
	ReservationID int64
	UserID        *int64
	ManualName    *string
}

type ParticipantCommands interface {
	Create(ctx context.Context, in CreateParticipantInput, actor string) (*participant.Participant, error)
	// Delete reports whether a participant was removed.
	Delete(ctx context.Context, id int64, actor string) (bool, error)
	// DeleteByReservation returns the number of participants removed.
	DeleteByReservation(ctx context.Context, reservationID int64, actor string) (int64, error)
}

type participantCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewParticipantCommands(uow shared.UnitOfWork) ParticipantCommands {
	return &participantCommandsImpl{uow: uow}
}

func (p *participantCommandsImpl) Create(ctx context.Context, in CreateParticipantInput, actor string) (*participant.Participant, error) {
	identity, err := participant.NewIdentity(in.UserID, in.ManualName)
	if err != nil {
		return nil, err
	}

	var created *participant.Participant
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByID(ctx, in.ReservationID, shared.VisibleOnly)
		if derr != nil {
			return notFoundAs(derr, reservation.ErrNotFound)
		}
		if derr = res.AuthorizeChange(actor); derr != nil {
			return derr
		}

		if identity.IsUser() {
			if _, derr = tx.Users().FindByID(ctx, *identity.UserID()); derr != nil {
				return notFoundAs(derr, user.ErrNotFound)
			}
			exists, derr := tx.Participants().UserExists(ctx, res.ID(), *identity.UserID())
			if derr != nil {
				return derr
			}
			if exists {
				return participant.ErrDuplicateUser
			}
		} else {
			exists, derr := tx.Participants().NameExists(ctx, res.ID(), *identity.ManualName())
			if derr != nil {
				return derr
			}
			if exists {
				return participant.ErrDuplicateName
			}
		}

		created, derr = tx.Participants().Create(ctx, participant.NewParticipant(res.ID(), identity))
		return duplicateParticipant(derr)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *participantCommandsImpl) Delete(ctx context.Context, id int64, actor string) (bool, error) {
	var deleted bool
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Participants().FindByID(ctx, id)
		if infra.IsKind(derr, infra.KindNotFound) {
			return nil
		}
		if derr != nil {
			return derr
		}

		// Participants of a deleted reservation can still be removed by anyone.
		res, derr := tx.Reservations().FindByID(ctx, existing.ReservationID(), shared.VisibleOnly)
		switch {
		case derr == nil:
			if derr = res.AuthorizeChange(actor); derr != nil {
				return derr
			}
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		deleted, derr = tx.Participants().Delete(ctx, id)
		return derr
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (p *participantCommandsImpl) DeleteByReservation(ctx context.Context, reservationID int64, actor string) (int64, error) {
	var count int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByID(ctx, reservationID, shared.VisibleOnly)
		if derr != nil {
			return notFoundAs(derr, reservation.ErrNotFound)
		}
		if derr = res.AuthorizeChange(actor); derr != nil {
			return derr
		}

		count, derr = tx.Participants().DeleteByReservation(ctx, reservationID)
		return derr
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func duplicateParticipant(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	switch infra.ConstraintName(err) {
	case uniqueParticipantUser:
		return participant.ErrDuplicateUser
	case uniqueParticipantName:
		return participant.ErrDuplicateName
	}
	return err
}
