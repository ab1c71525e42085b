package readstore

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type LocationReadQueries interface {
	GetLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLocationParams) (sqlc.Locations, error)
	ListLocations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLocationsParams) ([]sqlc.Locations, error)
	CountLocations(ctx context.Context, db sqlc.DBTX, active pgtype.Bool) (int64, error)
}

type LocationReadStore struct {
	queries LocationReadQueries
	db      sqlc.DBTX
}

func NewLocationReadStore(queries LocationReadQueries, db sqlc.DBTX) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LocationReadStore) FindByID(ctx context.Context, id int64) (*queries.LocationView, error) {
	row, err := r.queries.GetLocation(ctx, r.db, sqlc.GetLocationParams{ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return toLocationView(row), nil
}

func (r *LocationReadStore) List(ctx context.Context, filter queries.LocationFilter, page queries.Page) ([]*queries.LocationView, error) {
	offset, limit := pageBounds(page)
	rows, err := r.queries.ListLocations(ctx, r.db, sqlc.ListLocationsParams{
		Active: pgconv.BoolPtrToPgtype(filter.Active),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	result := make([]*queries.LocationView, len(rows))
	for i, row := range rows {
		result[i] = toLocationView(row)
	}
	return result, nil
}

func (r *LocationReadStore) Count(ctx context.Context, filter queries.LocationFilter) (int64, error) {
	n, err := r.queries.CountLocations(ctx, r.db, pgconv.BoolPtrToPgtype(filter.Active))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count locations", err)
	}
	return n, nil
}

func toLocationView(row sqlc.Locations) *queries.LocationView {
	return &queries.LocationView{
		ID:          row.ID,
		Name:        row.Name,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Active:      row.Active,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
