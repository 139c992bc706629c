package response

import (
	"time"

	"leftoversaver/internal/pkg/money"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferResponse struct {
	ID           uuid.UUID  `json:"id"`
	StoreID      *uuid.UUID `json:"storeId,omitempty"`
	Name         string     `json:"name"`
	PriceCents   int64      `json:"priceCents"`
	PriceDisplay string     `json:"priceDisplay"`
	Currency     string     `json:"currency"`
	PickupUntil  string     `json:"pickupUntil"`
	Stock        int        `json:"stock"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lng          *float64   `json:"lng,omitempty"`
	StoreAddress *string    `json:"storeAddress,omitempty"`
	StoreContact *string    `json:"storeContact,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type OfferListItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	StoreID      *uuid.UUID `json:"storeId,omitempty"`
	Name         string     `json:"name"`
	PriceCents   int64      `json:"priceCents"`
	PriceDisplay string     `json:"priceDisplay"`
	Currency     string     `json:"currency"`
	PickupUntil  string     `json:"pickupUntil"`
	Stock        int        `json:"stock"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	DistanceKm   *float64   `json:"distanceKm,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromOfferView(rm *queries.OfferView, locale string) *OfferResponse {
	var resp OfferResponse
	_ = copier.Copy(&resp, rm)
	resp.PriceDisplay = money.Format(rm.PriceCents, rm.Currency, locale)
	return &resp
}

func FromOfferListItem(rm *queries.OfferListItem, locale string) *OfferListItemResponse {
	var resp OfferListItemResponse
	_ = copier.Copy(&resp, rm)
	resp.PriceDisplay = money.Format(rm.PriceCents, rm.Currency, locale)
	return &resp
}

func FromOfferListItems(rms []*queries.OfferListItem, locale string) []*OfferListItemResponse {
	items := make([]*OfferListItemResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromOfferListItem(rm, locale)
	}
	return items
}
