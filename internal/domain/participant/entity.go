package participant

import (
	"time"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"
)

const MaxManualNameLength = 255

var (
	ErrNotFound          = errs.NewKind("participant not found", errs.ErrNotFound)
	ErrIdentityRequired  = errs.NewKind("exactly one of user_id or manual_name must be provided", errs.ErrInvalidRelationship)
	ErrDuplicateUser     = errs.NewKind("the user is already a participant of this reservation", errs.ErrConflict)
	ErrDuplicateName     = errs.NewKind("a participant with this name already exists in this reservation", errs.ErrConflict)
	ErrInvalidManualName = errs.NewKind("manual name must be at most 255 characters", errs.ErrValidation)
)

// Identity is who the participant is: a registered user or a free-text name.
type Identity struct {
	userID     *int64
	manualName *string
}

// NewIdentity accepts exactly one of userID and manualName. A blank name counts as absent.
func NewIdentity(userID *int64, manualName *string) (Identity, error) {
	name := ptr.TrimmedString(manualName)
	if (userID == nil) == (name == nil) {
		return Identity{}, ErrIdentityRequired
	}
	if name != nil && utf8.RuneCountInString(*name) > MaxManualNameLength {
		return Identity{}, ErrInvalidManualName
	}
	return Identity{userID: userID, manualName: name}, nil
}

func (i Identity) UserID() *int64      { return i.userID }
func (i Identity) ManualName() *string { return i.manualName }
func (i Identity) IsUser() bool        { return i.userID != nil }

type Participant struct {
	id            int64
	reservationID int64
	identity      Identity
	createdAt     time.Time
}

func NewParticipant(reservationID int64, identity Identity) *Participant {
	return &Participant{
		reservationID: reservationID,
		identity:      identity,
	}
}

func ReconstructParticipant(id, reservationID int64, userID *int64, manualName *string, createdAt time.Time) *Participant {
	return &Participant{
		id:            id,
		reservationID: reservationID,
		identity:      Identity{userID: userID, manualName: manualName},
		createdAt:     createdAt,
	}
}

func (p *Participant) ID() int64            { return p.id }
func (p *Participant) ReservationID() int64 { return p.reservationID }
func (p *Participant) Identity() Identity   { return p.identity }
func (p *Participant) UserID() *int64       { return p.identity.userID }
func (p *Participant) ManualName() *string  { return p.identity.manualName }
func (p *Participant) CreatedAt() time.Time { return p.createdAt }
