package queries

const (
	DefaultListLimit   = 100
	MaxListLimit       = 200
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type Page struct {
	Skip  int
	Limit int
}

// NewPage clamps skip at zero and the limit into (0, MaxListLimit].
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	return Page{Skip: skip, Limit: ValidateLimit(limit)}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidateSearchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

// ListResult is one page of items plus the total matching the filter.
type ListResult[T any] struct {
	Items []T
	Total int64
	Skip  int
	Limit int
}
