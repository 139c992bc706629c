//go:build unit || e2e

package builder

import (
	"time"

	"leftoversaver/internal/domain/offer"
	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	StoreID     *uuid.UUID
	Name        string
	PriceCents  int64
	Currency    string
	PickupUntil string
	Stock       int
	Categories  []string
	Lat         *float64
	Lng         *float64
}

func NewOfferBuilder() *OfferBuilder {
	storeID := uuid.New()
	lat, lng := 52.52, 13.405
	return &OfferBuilder{
		StoreID:     &storeID,
		Name:        "Bakery surprise bag",
		PriceCents:  399,
		Currency:    "EUR",
		PickupUntil: "18:00",
		Stock:       3,
		Categories:  []string{"bakery"},
		Lat:         &lat,
		Lng:         &lng,
	}
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	price, err := offer.NewPrice(b.PriceCents)
	if err != nil {
		return nil, err
	}

	var coord *offer.Coordinate
	if b.Lat != nil && b.Lng != nil {
		c, err := offer.NewCoordinate(*b.Lat, *b.Lng)
		if err != nil {
			return nil, err
		}
		coord = &c
	}

	return offer.NewOffer(b.StoreID, b.Name, price, b.Currency, b.PickupUntil, b.Stock, nil, offer.NewCategories(b.Categories), coord)
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		Name:        b.Name,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		PickupUntil: b.PickupUntil,
		Stock:       b.Stock,
		Categories:  b.Categories,
		Lat:         b.Lat,
		Lng:         b.Lng,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	now := time.Now()
	return &queries.OfferView{
		ID:          uuid.New(),
		StoreID:     b.StoreID,
		Name:        b.Name,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		PickupUntil: b.PickupUntil,
		Stock:       b.Stock,
		Categories:  b.Categories,
		Lat:         b.Lat,
		Lng:         b.Lng,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *OfferBuilder) BuildListItem() *queries.OfferListItem {
	return &queries.OfferListItem{
		ID:          uuid.New(),
		StoreID:     b.StoreID,
		Name:        b.Name,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		PickupUntil: b.PickupUntil,
		Stock:       b.Stock,
		Categories:  b.Categories,
		Lat:         b.Lat,
		Lng:         b.Lng,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *OfferBuilder) WithName(name string) *OfferBuilder {
	b.Name = name
	return b
}

func (b *OfferBuilder) WithPriceCents(cents int64) *OfferBuilder {
	b.PriceCents = cents
	return b
}

func (b *OfferBuilder) WithStock(stock int) *OfferBuilder {
	b.Stock = stock
	return b
}

func (b *OfferBuilder) WithPickupUntil(window string) *OfferBuilder {
	b.PickupUntil = window
	return b
}

func (b *OfferBuilder) WithCategories(tags ...string) *OfferBuilder {
	b.Categories = tags
	return b
}

func (b *OfferBuilder) WithCoordinate(lat, lng float64) *OfferBuilder {
	b.Lat, b.Lng = &lat, &lng
	return b
}

func (b *OfferBuilder) WithoutCoordinate() *OfferBuilder {
	b.Lat, b.Lng = nil, nil
	return b
}
