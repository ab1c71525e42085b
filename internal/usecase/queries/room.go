package queries

import (
	"context"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter, page Page) ([]*RoomView, error)
	Count(ctx context.Context, filter RoomFilter) (int64, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter, page Page) (*ListResult[*RoomView], error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter, page Page) (*ListResult[*RoomView], error) {
	page = NewPage(page.Skip, page.Limit)
	items, err := q.store.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListResult[*RoomView]{Items: items, Total: total, Skip: page.Skip, Limit: page.Limit}, nil
}
