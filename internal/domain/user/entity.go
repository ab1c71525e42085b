package user

import (
	"time"

	"room-reservation/internal/pkg/errs"
)

var ErrNotFound = errs.NewKind("user not found", errs.ErrNotFound)

// User is created on first login and refreshed on every later one.
type User struct {
	id          int64
	externalID  string
	email       Email
	name        string
	avatarURL   *string
	lastLoginAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(externalID string, email Email, name string, avatarURL *string, now time.Time) (*User, error) {
	ext, err := normalizeExternalID(externalID)
	if err != nil {
		return nil, err
	}
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	loginAt := now
	return &User{
		externalID:  ext,
		email:       email,
		name:        n,
		avatarURL:   avatarURL,
		lastLoginAt: &loginAt,
	}, nil
}

func ReconstructUser(
	id int64,
	externalID string,
	email Email,
	name string,
	avatarURL *string,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:          id,
		externalID:  externalID,
		email:       email,
		name:        name,
		avatarURL:   avatarURL,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// RecordLogin refreshes the profile. The avatar is only replaced when a new one is given.
func (u *User) RecordLogin(name string, avatarURL *string, now time.Time) error {
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	u.name = n
	if avatarURL != nil {
		u.avatarURL = avatarURL
	}
	loginAt := now
	u.lastLoginAt = &loginAt
	return nil
}

func (u *User) ID() int64               { return u.id }
func (u *User) ExternalID() string      { return u.externalID }
func (u *User) Email() Email            { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) AvatarURL() *string      { return u.avatarURL }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
