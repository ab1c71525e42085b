package shared

// Visibility controls whether soft-deleted rows are returned by a lookup.
type Visibility int

const (
	VisibleOnly Visibility = iota
	IncludeDeleted
)

func (v Visibility) IncludesDeleted() bool {
	return v == IncludeDeleted
}
