package queries

import (
	"context"

	"github.com/google/uuid"

	"leftoversaver/internal/domain/offer"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/pkg/errs"
)

// ListOffersParams carries the caller's position and optional filters.
// A nil Origin means distance is unknown for every offer; such results
// keep their stored order and a nil DistanceKm.
type ListOffersParams struct {
	Origin  *offer.Coordinate
	Filters offer.Filters
}

type OfferQueries interface {
	List(ctx context.Context, params ListOffersParams) ([]*OfferListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type OfferReadStore interface {
	FindAll(ctx context.Context) ([]*OfferListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
}

func NewOfferQueries(readStore OfferReadStore) OfferQueries {
	return &offerQueriesImpl{readStore: readStore}
}

func (q *offerQueriesImpl) List(ctx context.Context, params ListOffersParams) ([]*OfferListItem, error) {
	rows, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load offers")
	}

	ranked := offer.Rank(rows, params.Origin, params.Filters)

	items := make([]*OfferListItem, 0, len(ranked))
	for _, r := range ranked {
		r.Item.DistanceKm = r.DistanceKm
		items = append(items, r.Item)
	}
	return items, nil
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, errs.Wrap(err, "failed to load offer")
	}
	return view, nil
}
