package location

import (
	"strings"
	"time"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

var (
	ErrNotFound           = errs.NewKind("location not found", errs.ErrNotFound)
	ErrNameTaken          = errs.NewKind("a location with this name already exists", errs.ErrConflict)
	ErrInvalidName        = errs.NewKind("location name is required and must be at most 100 characters", errs.ErrValidation)
	ErrInvalidDescription = errs.NewKind("location description must be at most 1000 characters", errs.ErrValidation)
)

type Location struct {
	id          int64
	name        string
	description *string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

func NewLocation(name string, description *string, active bool) (*Location, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	return &Location{
		name:        n,
		description: description,
		active:      active,
	}, nil
}

func ReconstructLocation(
	id int64,
	name string,
	description *string,
	active bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Location {
	return &Location{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

func (l *Location) Rename(name string) error {
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	l.name = n
	return nil
}

func (l *Location) SetDescription(description *string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	l.description = description
	return nil
}

func (l *Location) SetActive(active bool) {
	l.active = active
}

func (l *Location) IsDeleted() bool {
	return l.deletedAt != nil
}

func (l *Location) ID() int64             { return l.id }
func (l *Location) Name() string          { return l.name }
func (l *Location) Description() *string  { return l.description }
func (l *Location) Active() bool          { return l.active }
func (l *Location) CreatedAt() time.Time  { return l.createdAt }
func (l *Location) UpdatedAt() time.Time  { return l.updatedAt }
func (l *Location) DeletedAt() *time.Time { return l.deletedAt }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" || utf8.RuneCountInString(n) > MaxNameLength {
		return "", ErrInvalidName
	}
	return n, nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	return nil
}
