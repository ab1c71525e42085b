package errs

// Kind sentinels. Domain errors are marked with exactly one of these so the
// handler layer can map them to a status without looking at the message.
var (
	ErrNotFound            = New("not found")
	ErrConflict            = New("conflict")
	ErrInvalidTemporal     = New("invalid time range")
	ErrInvalidRelationship = New("invalid relationship")
	ErrInvalidCoffee       = New("invalid coffee service")
	ErrForbidden           = New("forbidden")
	ErrValidation          = New("validation failed")
)

type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindConflict            Kind = "CONFLICT"
	KindInvalidTemporal     Kind = "INVALID_TEMPORAL"
	KindInvalidRelationship Kind = "INVALID_RELATIONSHIP"
	KindInvalidCoffee       Kind = "INVALID_COFFEE"
	KindForbidden           Kind = "FORBIDDEN"
	KindValidation          Kind = "VALIDATION_ERROR"
	KindInternal            Kind = "INTERNAL_ERROR"
)

var kindSentinels = []struct {
	kind Kind
	ref  error
}{
	{KindForbidden, ErrForbidden},
	{KindNotFound, ErrNotFound},
	{KindConflict, ErrConflict},
	{KindInvalidTemporal, ErrInvalidTemporal},
	{KindInvalidRelationship, ErrInvalidRelationship},
	{KindInvalidCoffee, ErrInvalidCoffee},
	{KindValidation, ErrValidation},
}

// kindError is a sentinel that matches itself and its kind sentinel, and
// nothing else. Mark is not used here because marked errors share the mark of
// their kind and would all compare equal under Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind creates a sentinel error tagged with a kind sentinel.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// KindOf reports the business kind of err. Anything untagged is KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, ks := range kindSentinels {
		if Is(err, ks.ref) {
			return ks.kind
		}
	}
	return KindInternal
}

func (k Kind) String() string {
	return string(k)
}
