package queries

import (
	"time"

	"leftoversaver/internal/domain/offer"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OfferView struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     *uuid.UUID `json:"store_id,omitempty"`
	Name        string     `json:"name"`
	PriceCents  int64      `json:"price_cents"`
	Currency    string     `json:"currency"`
	PickupUntil string     `json:"pickup_until"`
	Stock       int        `json:"stock"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	StoreAddress *string   `json:"store_address,omitempty"`
	StoreContact *string   `json:"store_contact,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OfferListItem is one row of the discovery feed. Lat/Lng are the effective
// coordinate: the offer's own when present, otherwise its store's.
// DistanceKm is filled in by the ranking pass.
type OfferListItem struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     *uuid.UUID `json:"store_id,omitempty"`
	Name        string     `json:"name"`
	PriceCents  int64      `json:"price_cents"`
	Currency    string     `json:"currency"`
	PickupUntil string     `json:"pickup_until"`
	Stock       int        `json:"stock"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	DistanceKm  *float64   `json:"distance_km,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Locatable for the offer ranker.
func (o *OfferListItem) Location() *offer.Coordinate {
	if o.Lat == nil || o.Lng == nil {
		return nil
	}
	coord, err := offer.NewCoordinate(*o.Lat, *o.Lng)
	if err != nil {
		return nil
	}
	return &coord
}

func (o *OfferListItem) PickupWindow() string   { return o.PickupUntil }
func (o *OfferListItem) CategoryTags() []string { return o.Categories }

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	OfferID     uuid.UUID `json:"offer_id"`
	UserID      uuid.UUID `json:"user_id"`
	OfferName   string    `json:"offer_name"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	PickupUntil string    `json:"pickup_until"`
	Paid        bool      `json:"paid"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StoreView struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	Contact    string    `json:"contact"`
	Categories []string  `json:"categories,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	IsActive    bool      `json:"is_active"`
}
