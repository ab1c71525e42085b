package repository

import (
	"context"
	"time"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
)

type LocationWriteQueries interface {
	GetLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLocationParams) (sqlc.Locations, error)
	LocationNameExists(ctx context.Context, db sqlc.DBTX, arg sqlc.LocationNameExistsParams) (bool, error)
	CreateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLocationParams) (sqlc.Locations, error)
	UpdateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLocationParams) (sqlc.Locations, error)
	SoftDeleteLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteLocationParams) (int64, error)
}

type LocationRepository struct {
	queries LocationWriteQueries
	db      sqlc.DBTX
}

func NewLocationRepository(queries LocationWriteQueries, db sqlc.DBTX) *LocationRepository {
	return &LocationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LocationRepository) FindByID(ctx context.Context, id int64, vis shared.Visibility) (*location.Location, error) {
	row, err := r.queries.GetLocation(ctx, r.db, sqlc.GetLocationParams{
		ID:             id,
		IncludeDeleted: vis.IncludesDeleted(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return converter.LocationFromRow(row), nil
}

func (r *LocationRepository) NameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	exists, err := r.queries.LocationNameExists(ctx, r.db, sqlc.LocationNameExistsParams{
		Name:      name,
		ExcludeID: pgconv.Int64PtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check location name", err)
	}
	return exists, nil
}

func (r *LocationRepository) Create(ctx context.Context, loc *location.Location) (*location.Location, error) {
	row, err := r.queries.CreateLocation(ctx, r.db, converter.LocationToCreateParams(loc))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create location", err)
	}
	return converter.LocationFromRow(row), nil
}

func (r *LocationRepository) Update(ctx context.Context, loc *location.Location) (*location.Location, error) {
	row, err := r.queries.UpdateLocation(ctx, r.db, converter.LocationToUpdateParams(loc))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update location", err)
	}
	return converter.LocationFromRow(row), nil
}

func (r *LocationRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	n, err := r.queries.SoftDeleteLocation(ctx, r.db, sqlc.SoftDeleteLocationParams{
		ID:        id,
		DeletedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete location", err)
	}
	return n > 0, nil
}
