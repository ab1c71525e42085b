package queries

import (
	"context"
	"strings"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/errs"
)

var (
	ErrAdminOnly         = errs.NewKind("only administrators can list users", errs.ErrForbidden)
	ErrSearchTermMissing = errs.NewKind("a search term is required", errs.ErrValidation)
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	Search(ctx context.Context, term *string, page Page) ([]*UserView, error)
	Count(ctx context.Context, term *string) (int64, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	Search(ctx context.Context, term string, limit int) ([]*UserView, error)
	// List is restricted to the configured administrator emails.
	List(ctx context.Context, actorEmail string, term *string, page Page) (*ListResult[*UserView], error)
}

type userQueriesImpl struct {
	store UserReadStore
	admin config.AdminConfig
}

func NewUserQueries(store UserReadStore, cfg config.Config) UserQueries {
	return &userQueriesImpl{store: store, admin: cfg.Admin}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) Search(ctx context.Context, term string, limit int) ([]*UserView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrSearchTermMissing
	}
	return q.store.Search(ctx, &term, Page{Skip: 0, Limit: ValidateSearchLimit(limit)})
}

func (q *userQueriesImpl) List(ctx context.Context, actorEmail string, term *string, page Page) (*ListResult[*UserView], error) {
	if !q.admin.IsAdmin(actorEmail) {
		return nil, ErrAdminOnly
	}

	if term != nil {
		t := strings.TrimSpace(*term)
		term = &t
		if t == "" {
			term = nil
		}
	}

	page = NewPage(page.Skip, page.Limit)
	items, err := q.store.Search(ctx, term, page)
	if err != nil {
		return nil, err
	}
	total, err := q.store.Count(ctx, term)
	if err != nil {
		return nil, err
	}
	return &ListResult[*UserView]{Items: items, Total: total, Skip: page.Skip, Limit: page.Limit}, nil
}
