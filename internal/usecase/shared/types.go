package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types.
type OfferSnapshot struct {
	ID          uuid.UUID
	StoreID     *uuid.UUID
	Name        string
	PriceCents  int64
	Currency    string
	PickupUntil string
	Stock       int
}

type BookingSnapshot struct {
	ID        uuid.UUID
	OfferID   uuid.UUID
	UserID    uuid.UUID
	Status    string
	Paid      bool
	CreatedAt time.Time
}

type StoreSnapshot struct {
	ID      uuid.UUID
	Address string
	Contact string
	Lat     *float64
	Lng     *float64
}
