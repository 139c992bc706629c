package request

import (
	"strconv"
	"strings"

	"leftoversaver/internal/domain/offer"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	PriceCents  int64    `json:"price_cents" binding:"min=0"`
	Currency    string   `json:"currency,omitempty" binding:"omitempty,len=3"`
	PickupUntil string   `json:"pickup_until,omitempty"`
	Stock       int      `json:"stock" binding:"min=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

func (r *CreateOfferRequest) ToDomain(storeID uuid.UUID) (*offer.Offer, error) {
	price, err := offer.NewPrice(r.PriceCents)
	if err != nil {
		return nil, err
	}

	var coord *offer.Coordinate
	if r.Lat != nil && r.Lng != nil {
		c, err := offer.NewCoordinate(*r.Lat, *r.Lng)
		if err != nil {
			return nil, err
		}
		coord = &c
	}

	return offer.NewOffer(
		&storeID,
		r.Name,
		price,
		r.Currency,
		r.PickupUntil,
		r.Stock,
		r.ImageURL,
		offer.NewCategories(r.Categories),
		coord,
	)
}

// ListOffersQuery carries the raw discovery feed query string. Values are
// kept as strings so a malformed number degrades to an absent filter
// instead of rejecting the request.
type ListOffersQuery struct {
	Lat         string `form:"lat"`
	Lng         string `form:"lng"`
	MaxKm       string `form:"max_km"`
	PickupAfter string `form:"pickup_after"`
	Category    string `form:"category"`
}

func (q *ListOffersQuery) ToParams() queries.ListOffersParams {
	params := queries.ListOffersParams{}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(q.Lat), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(q.Lng), 64)
	if latErr == nil && lngErr == nil {
		if coord, err := offer.NewCoordinate(lat, lng); err == nil {
			params.Origin = &coord
		}
	}

	if maxKm, err := strconv.ParseFloat(strings.TrimSpace(q.MaxKm), 64); err == nil {
		params.Filters.MaxDistanceKm = &maxKm
	}

	if pickupAfter := strings.TrimSpace(q.PickupAfter); pickupAfter != "" {
		params.Filters.PickupAfter = &pickupAfter
	}

	if category := strings.TrimSpace(q.Category); category != "" {
		params.Filters.Category = &category
	}

	return params
}
