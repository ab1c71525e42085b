//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/location"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/usecase/queries"
)

type LocationBuilder struct {
	ID          int64
	Name        string
	Description *string
	Active      bool
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

func NewLocationBuilder() *LocationBuilder {
	desc := "Main office building"
	return &LocationBuilder{
		ID:          1,
		Name:        "Building A",
		Description: &desc,
		Active:      true,
		CreatedAt:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(l)
	return l
}

func (l *LocationBuilder) BuildDomain() (*location.Location, error) {
	return location.NewLocation(l.Name, l.Description, l.Active)
}

// BuildStored returns the location as loaded from storage.
func (l *LocationBuilder) BuildStored() *location.Location {
	return location.ReconstructLocation(l.ID, l.Name, l.Description, l.Active, l.CreatedAt, l.CreatedAt, l.DeletedAt)
}

func (l *LocationBuilder) BuildView() *queries.LocationView {
	return &queries.LocationView{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Active:      l.Active,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.CreatedAt,
	}
}

func (l *LocationBuilder) BuildCreateRequestDTO() reqdto.CreateLocationRequest {
	active := l.Active
	return reqdto.CreateLocationRequest{
		Name:        l.Name,
		Description: l.Description,
		Active:      &active,
	}
}

func (l *LocationBuilder) WithID(id int64) *LocationBuilder {
	l.ID = id
	return l
}

func (l *LocationBuilder) WithName(name string) *LocationBuilder {
	l.Name = name
	return l
}

func (l *LocationBuilder) AsDeleted() *LocationBuilder {
	at := l.CreatedAt.Add(time.Hour)
	l.DeletedAt = &at
	return l
}
