package queries

import (
	"context"

	"github.com/google/uuid"

	"leftoversaver/internal/infra"
	"leftoversaver/internal/pkg/errs"
)

type StoreQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
}

type StoreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
}

type storeQueriesImpl struct {
	readStore StoreReadStore
}

func NewStoreQueries(readStore StoreReadStore) StoreQueries {
	return &storeQueriesImpl{readStore: readStore}
}

func (q *storeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Wrap(err, "failed to load store")
	}
	return view, nil
}
