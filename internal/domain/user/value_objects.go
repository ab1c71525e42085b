package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
)

const (
	MaxNameLength       = 255
	MaxExternalIDLength = 255
)

var (
	ErrInvalidEmail      = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidName       = errs.NewKind("user name is required and must be at most 255 characters", errs.ErrValidation)
	ErrInvalidExternalID = errs.NewKind("external identity is required", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lowercases the address so it can be compared by equality.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" || utf8.RuneCountInString(n) > MaxNameLength {
		return "", ErrInvalidName
	}
	return n, nil
}

func normalizeExternalID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxExternalIDLength {
		return "", ErrInvalidExternalID
	}
	return id, nil
}
