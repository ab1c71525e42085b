package converter

import (
	"room-reservation/internal/domain/location"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

func LocationToCreateParams(loc *location.Location) sqlc.CreateLocationParams {
	return sqlc.CreateLocationParams{
		Name:        loc.Name(),
		Description: pgconv.StringPtrToPgtype(loc.Description()),
		Active:      loc.Active(),
	}
}

func LocationToUpdateParams(loc *location.Location) sqlc.UpdateLocationParams {
	return sqlc.UpdateLocationParams{
		ID:          loc.ID(),
		Name:        loc.Name(),
		Description: pgconv.StringPtrToPgtype(loc.Description()),
		Active:      loc.Active(),
	}
}

func LocationFromRow(row sqlc.Locations) *location.Location {
	return location.ReconstructLocation(
		row.ID,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Description),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	)
}
