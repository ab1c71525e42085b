package reservation

import (
	"strings"
	"time"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
)

const (
	MaxResponsibleLength = 150
	MaxDescriptionLength = 1000
)

var (
	ErrInvalidTimeSlot    = errs.NewKind("end time must be after start time", errs.ErrInvalidTemporal)
	ErrStartInPast        = errs.NewKind("reservations cannot start in the past", errs.ErrInvalidTemporal)
	ErrInvalidCoffee      = errs.NewKind("coffee quantity is required and must be greater than zero when coffee is requested", errs.ErrInvalidCoffee)
	ErrInvalidResponsible = errs.NewKind("responsible is required and must be at most 150 characters", errs.ErrValidation)
	ErrInvalidDescription = errs.NewKind("reservation description must be at most 1000 characters", errs.ErrValidation)
)

// TimeSlot is a half-open interval [start, end) in UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rebuilds a stored slot without validation.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

// ReconstructCoffee rebuilds a stored coffee request without validation.
func ReconstructCoffee(requested bool, quantity *int) Coffee {
	if !requested {
		return Coffee{}
	}
	return Coffee{requested: true, quantity: quantity}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses strict comparisons so back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// EnsureNotPast rejects a slot whose start is strictly before now.
func (ts TimeSlot) EnsureNotPast(now time.Time) error {
	if ts.start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// Coffee holds the coffee service request. Quantity is present iff requested.
type Coffee struct {
	requested bool
	quantity  *int
}

func NoCoffee() Coffee {
	return Coffee{}
}

func NewCoffee(requested bool, quantity *int) (Coffee, error) {
	if !requested {
		return Coffee{}, nil
	}
	if quantity == nil || *quantity <= 0 {
		return Coffee{}, ErrInvalidCoffee
	}
	q := *quantity
	return Coffee{requested: true, quantity: &q}, nil
}

func (c Coffee) Requested() bool { return c.requested }
func (c Coffee) Quantity() *int  { return c.quantity }

func NormalizeResponsible(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxResponsibleLength {
		return "", ErrInvalidResponsible
	}
	return s, nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	return nil
}
