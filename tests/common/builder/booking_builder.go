//go:build unit || e2e

package builder

import (
	"time"

	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	OfferID     uuid.UUID
	UserID      uuid.UUID
	OfferName   string
	PriceCents  int64
	Currency    string
	PickupUntil string
	Paid        bool
	Status      string
	PayLater    bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		OfferID:     uuid.New(),
		UserID:      uuid.New(),
		OfferName:   "Bakery surprise bag",
		PriceCents:  399,
		Currency:    "EUR",
		PickupUntil: "18:00",
		Paid:        true,
		Status:      "active",
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		OfferID:  b.OfferID,
		PayLater: b.PayLater,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:          uuid.New(),
		OfferID:     b.OfferID,
		UserID:      b.UserID,
		OfferName:   b.OfferName,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		PickupUntil: b.PickupUntil,
		Paid:        b.Paid,
		Code:        "A1B2C3D4",
		Status:      b.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithOfferID(id uuid.UUID) *BookingBuilder {
	b.OfferID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) AsPayLater() *BookingBuilder {
	b.PayLater = true
	b.Paid = false
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
