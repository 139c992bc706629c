package response

import (
	"time"

	"leftoversaver/internal/pkg/money"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	OfferID      uuid.UUID `json:"offerId"`
	OfferName    string    `json:"offerName"`
	PriceCents   int64     `json:"priceCents"`
	PriceDisplay string    `json:"priceDisplay"`
	Currency     string    `json:"currency"`
	PickupUntil  string    `json:"pickupUntil"`
	Paid         bool      `json:"paid"`
	Code         string    `json:"code"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView, locale string) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.PriceDisplay = money.Format(rm.PriceCents, rm.Currency, locale)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView, locale string) []*BookingResponse {
	items := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromBookingView(rm, locale)
	}
	return items
}
