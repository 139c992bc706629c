package writerepo

import (
	"context"

	"leftoversaver/internal/domain/booking"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createBookingSQL = `
INSERT INTO bookings (id, offer_id, user_id, offer_name, price_cents, currency, pickup_until, paid, code, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1
`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	snapshot := b.Snapshot()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.OfferID()),
		pgconv.UUIDToPgtype(b.UserID()),
		snapshot.Name,
		snapshot.PriceCents,
		snapshot.Currency,
		snapshot.PickupUntil,
		b.Paid(),
		b.Code(),
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, pgconv.UUIDToPgtype(bookingID), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
