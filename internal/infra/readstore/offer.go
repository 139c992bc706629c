package readstore

import (
	"context"

	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Offers without their own coordinate fall back to their store's, so the
// feed can still rank them by distance.
const findAllOffersSQL = `
SELECT o.id, o.store_id, o.name, o.price_cents, o.currency, o.pickup_until,
       o.stock, o.image_url, o.categories,
       COALESCE(o.lat, s.lat) AS lat,
       COALESCE(o.lng, s.lng) AS lng,
       o.created_at
FROM offers o
LEFT JOIN stores s ON s.id = o.store_id
ORDER BY o.created_at DESC, o.id
`

const findOfferByIDSQL = `
SELECT o.id, o.store_id, o.name, o.price_cents, o.currency, o.pickup_until,
       o.stock, o.image_url, o.categories,
       COALESCE(o.lat, s.lat) AS lat,
       COALESCE(o.lng, s.lng) AS lng,
       s.address AS store_address,
       s.contact AS store_contact,
       o.created_at, o.updated_at
FROM offers o
LEFT JOIN stores s ON s.id = o.store_id
WHERE o.id = $1
`

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

func (r *OfferReadStore) FindAll(ctx context.Context) ([]*queries.OfferListItem, error) {
	rows, err := r.db.Query(ctx, findAllOffersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var items []*queries.OfferListItem
	for rows.Next() {
		var (
			item       queries.OfferListItem
			id         pgtype.UUID
			storeID    pgtype.UUID
			imageURL   pgtype.Text
			categories []string
			lat, lng   pgtype.Float8
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&id, &storeID, &item.Name, &item.PriceCents, &item.Currency,
			&item.PickupUntil, &item.Stock, &imageURL, &categories,
			&lat, &lng, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.StoreID = pgconv.UUIDPtrFromPgtype(storeID)
		item.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
		item.Categories = categories
		item.Lat = pgconv.Float64PtrFromPgtype(lat)
		item.Lng = pgconv.Float64PtrFromPgtype(lng)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}

	return items, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	var (
		view       queries.OfferView
		rowID      pgtype.UUID
		storeID    pgtype.UUID
		imageURL   pgtype.Text
		categories []string
		lat, lng   pgtype.Float8
		address    pgtype.Text
		contact    pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findOfferByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &storeID, &view.Name, &view.PriceCents, &view.Currency,
		&view.PickupUntil, &view.Stock, &imageURL, &categories,
		&lat, &lng, &address, &contact, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}

	view.ID = uuid.UUID(rowID.Bytes)
	view.StoreID = pgconv.UUIDPtrFromPgtype(storeID)
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.Categories = categories
	view.Lat = pgconv.Float64PtrFromPgtype(lat)
	view.Lng = pgconv.Float64PtrFromPgtype(lng)
	view.StoreAddress = pgconv.StringPtrFromPgtype(address)
	view.StoreContact = pgconv.StringPtrFromPgtype(contact)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
