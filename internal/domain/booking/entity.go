package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySnapshot   = errors.New("booking snapshot requires the offer name")
	ErrInvalidSnapshot = errors.New("booking snapshot price cannot be negative")
	ErrNotActive       = errors.New("booking is not active")
)

// OfferSnapshot is the offer state denormalized into the booking at booking
// time. It is never live-joined afterwards; price changes on the offer do
// not affect existing bookings.
type OfferSnapshot struct {
	Name        string
	PriceCents  int64
	Currency    string
	PickupUntil string
}

func NewOfferSnapshot(name string, priceCents int64, currency, pickupUntil string) (OfferSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return OfferSnapshot{}, ErrEmptySnapshot
	}
	if priceCents < 0 {
		return OfferSnapshot{}, ErrInvalidSnapshot
	}
	return OfferSnapshot{
		Name:        name,
		PriceCents:  priceCents,
		Currency:    currency,
		PickupUntil: pickupUntil,
	}, nil
}

// Booking is one user's reservation of one unit of an offer. After creation
// the only permitted mutation is the active -> cancelled transition.
type Booking struct {
	id        uuid.UUID
	offerID   uuid.UUID
	userID    uuid.UUID
	snapshot  OfferSnapshot
	paid      bool
	code      string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(offerID, userID uuid.UUID, snapshot OfferSnapshot, paid bool) *Booking {
	return &Booking{
		id:       uuid.New(),
		offerID:  offerID,
		userID:   userID,
		snapshot: snapshot,
		paid:     paid,
		code:     NewConfirmationCode(),
		status:   StatusActive,
	}
}

func ReconstructBooking(
	id, offerID, userID uuid.UUID,
	snapshot OfferSnapshot,
	paid bool,
	code string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		offerID:   offerID,
		userID:    userID,
		snapshot:  snapshot,
		paid:      paid,
		code:      code,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking is a no-op; callers treat it as success so that retried
// cancel requests stay idempotent. Stock is deliberately not restored.
func (b *Booking) Cancel() {
	b.status = StatusCancelled
}

func (b *Booking) IsActive() bool    { return b.status == StatusActive }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) OfferID() uuid.UUID      { return b.offerID }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) Snapshot() OfferSnapshot { return b.snapshot }
func (b *Booking) Paid() bool              { return b.paid }
func (b *Booking) Code() string            { return b.code }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
