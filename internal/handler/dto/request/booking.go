package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
	// Unpaid bookings skip the charge and the stock check; the pickup is
	// settled at the counter.
	PayLater bool `json:"pay_later,omitempty"`
}
