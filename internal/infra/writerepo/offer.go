package writerepo

import (
	"context"

	"leftoversaver/internal/domain/offer"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createOfferSQL = `
INSERT INTO offers (id, store_id, name, price_cents, currency, pickup_until, stock, image_url, categories, lat, lng)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

const lockOfferStockSQL = `
SELECT stock FROM offers WHERE id = $1 FOR UPDATE
`

const decrementOfferStockSQL = `
UPDATE offers SET stock = stock - 1, updated_at = now() WHERE id = $1
`

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error) {
	var lat, lng *float64
	if coord := o.Location(); coord != nil {
		latV, lngV := coord.Lat(), coord.Lng()
		lat, lng = &latV, &lngV
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createOfferSQL,
		pgconv.UUIDToPgtype(o.ID()),
		pgconv.UUIDPtrToPgtype(o.StoreID()),
		o.Name(),
		o.Price().Cents(),
		o.Currency(),
		o.PickupUntil(),
		o.Stock(),
		pgconv.StringPtrToPgtype(o.ImageURL()),
		[]string(o.CategoryTags()),
		pgconv.Float64PtrToPgtype(lat),
		pgconv.Float64PtrToPgtype(lng),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}

	return id, nil
}

// LockStock holds a row lock on the offer until the surrounding
// transaction ends, which serializes concurrent bookings per offer.
func (r *OfferRepository) LockStock(ctx context.Context, offerID uuid.UUID) (int, bool, error) {
	var stock int
	err := r.db.QueryRow(ctx, lockOfferStockSQL, pgconv.UUIDToPgtype(offerID)).Scan(&stock)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to lock offer stock", err)
	}
	return stock, true, nil
}

func (r *OfferRepository) DecrementStock(ctx context.Context, offerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, decrementOfferStockSQL, pgconv.UUIDToPgtype(offerID)); err != nil {
		return infra.WrapRepoErr("failed to decrement offer stock", err)
	}
	return nil
}
