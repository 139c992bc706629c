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

const findBookingByIDSQL = `
SELECT id, offer_id, user_id, offer_name, price_cents, currency, pickup_until,
       paid, code, status, created_at, updated_at
FROM bookings
WHERE id = $1
`

const findBookingsByUserIDSQL = `
SELECT id, offer_id, user_id, offer_name, price_cents, currency, pickup_until,
       paid, code, status, created_at, updated_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC, id
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, findBookingByIDSQL, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserIDSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

func scanBookingView(scan func(dest ...any) error) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		id        pgtype.UUID
		offerID   pgtype.UUID
		userID    pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := scan(
		&id, &offerID, &userID, &view.OfferName, &view.PriceCents,
		&view.Currency, &view.PickupUntil, &view.Paid, &view.Code,
		&view.Status, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.OfferID = uuid.UUID(offerID.Bytes)
	view.UserID = uuid.UUID(userID.Bytes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
