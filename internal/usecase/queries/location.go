package queries

import (
	"context"

	"room-reservation/internal/domain/location"
	"room-reservation/internal/infra"
)

type LocationReadStore interface {
	FindByID(ctx context.Context, id int64) (*LocationView, error)
	List(ctx context.Context, filter LocationFilter, page Page) ([]*LocationView, error)
	Count(ctx context.Context, filter LocationFilter) (int64, error)
}

type LocationQueries interface {
	GetByID(ctx context.Context, id int64) (*LocationView, error)
	List(ctx context.Context, filter LocationFilter, page Page) (*ListResult[*LocationView], error)
}

type locationQueriesImpl struct {
	store LocationReadStore
}

func NewLocationQueries(store LocationReadStore) LocationQueries {
	return &locationQueriesImpl{store: store}
}

func (q *locationQueriesImpl) GetByID(ctx context.Context, id int64) (*LocationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, location.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *locationQueriesImpl) List(ctx context.Context, filter LocationFilter, page Page) (*ListResult[*LocationView], error) {
	page = NewPage(page.Skip, page.Limit)
	items, err := q.store.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListResult[*LocationView]{Items: items, Total: total, Skip: page.Skip, Limit: page.Limit}, nil
}
