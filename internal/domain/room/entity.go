package room

import (
	"strings"
	"time"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
)

const (
	MaxNameLength      = 100
	MaxResourcesLength = 500
)

var (
	ErrNotFound         = errs.NewKind("room not found", errs.ErrNotFound)
	ErrNameTaken        = errs.NewKind("a room with this name already exists in the location", errs.ErrConflict)
	ErrInvalidName      = errs.NewKind("room name is required and must be at most 100 characters", errs.ErrValidation)
	ErrInvalidCapacity  = errs.NewKind("room capacity must be a positive number", errs.ErrValidation)
	ErrInvalidResources = errs.NewKind("room resources must be at most 500 characters", errs.ErrValidation)
)

type Room struct {
	id         int64
	locationID int64
	name       string
	capacity   *int
	resources  *string
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

func NewRoom(locationID int64, name string, capacity *int, resources *string, active bool) (*Room, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if err := validateResources(resources); err != nil {
		return nil, err
	}
	return &Room{
		locationID: locationID,
		name:       n,
		capacity:   capacity,
		resources:  resources,
		active:     active,
	}, nil
}

func ReconstructRoom(
	id, locationID int64,
	name string,
	capacity *int,
	resources *string,
	active bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Room {
	return &Room{
		id:         id,
		locationID: locationID,
		name:       name,
		capacity:   capacity,
		resources:  resources,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		deletedAt:  deletedAt,
	}
}

// MoveTo reassigns the room. The caller has already resolved the location.
func (r *Room) MoveTo(locationID int64) {
	r.locationID = locationID
}

func (r *Room) Rename(name string) error {
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	r.name = n
	return nil
}

func (r *Room) SetCapacity(capacity *int) error {
	if err := validateCapacity(capacity); err != nil {
		return err
	}
	r.capacity = capacity
	return nil
}

func (r *Room) SetResources(resources *string) error {
	if err := validateResources(resources); err != nil {
		return err
	}
	r.resources = resources
	return nil
}

func (r *Room) SetActive(active bool) {
	r.active = active
}

func (r *Room) BelongsTo(locationID int64) bool {
	return r.locationID == locationID
}

func (r *Room) IsDeleted() bool {
	return r.deletedAt != nil
}

func (r *Room) ID() int64             { return r.id }
func (r *Room) LocationID() int64     { return r.locationID }
func (r *Room) Name() string          { return r.name }
func (r *Room) Capacity() *int        { return r.capacity }
func (r *Room) Resources() *string    { return r.resources }
func (r *Room) Active() bool          { return r.active }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Room) DeletedAt() *time.Time { return r.deletedAt }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" || utf8.RuneCountInString(n) > MaxNameLength {
		return "", ErrInvalidName
	}
	return n, nil
}

func validateCapacity(capacity *int) error {
	if capacity != nil && *capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

func validateResources(resources *string) error {
	if resources != nil && utf8.RuneCountInString(*resources) > MaxResourcesLength {
		return ErrInvalidResources
	}
	return nil
}
