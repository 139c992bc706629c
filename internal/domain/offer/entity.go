package offer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultCurrency = "EUR"

// Offer is one sellable unit of surplus food. Stock is only ever mutated by
// the booking transactor; offers are never deleted in-band.
type Offer struct {
	id          uuid.UUID
	storeID     *uuid.UUID
	name        string
	price       Price
	currency    string
	pickupUntil string
	stock       int
	imageURL    *string
	categories  Categories
	coord       *Coordinate
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffer(
	storeID *uuid.UUID,
	name string,
	price Price,
	currency string,
	pickupUntil string,
	stock int,
	imageURL *string,
	categories Categories,
	coord *Coordinate,
) (*Offer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Offer{
		id:          uuid.New(),
		storeID:     storeID,
		name:        name,
		price:       price,
		currency:    currency,
		pickupUntil: pickupUntil,
		stock:       stock,
		imageURL:    imageURL,
		categories:  categories,
		coord:       coord,
	}, nil
}

func ReconstructOffer(
	id uuid.UUID,
	storeID *uuid.UUID,
	name string,
	price Price,
	currency string,
	pickupUntil string,
	stock int,
	imageURL *string,
	categories Categories,
	coord *Coordinate,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		storeID:     storeID,
		name:        name,
		price:       price,
		currency:    currency,
		pickupUntil: pickupUntil,
		stock:       stock,
		imageURL:    imageURL,
		categories:  categories,
		coord:       coord,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) StoreID() *uuid.UUID   { return o.storeID }
func (o *Offer) Name() string          { return o.name }
func (o *Offer) Price() Price          { return o.price }
func (o *Offer) Currency() string      { return o.currency }
func (o *Offer) PickupUntil() string   { return o.pickupUntil }
func (o *Offer) Stock() int            { return o.stock }
func (o *Offer) ImageURL() *string     { return o.imageURL }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time  { return o.updatedAt }

func (o *Offer) InStock() bool { return o.stock > 0 }

// Locatable
func (o *Offer) Location() *Coordinate  { return o.coord }
func (o *Offer) PickupWindow() string   { return o.pickupUntil }
func (o *Offer) CategoryTags() []string { return o.categories }
