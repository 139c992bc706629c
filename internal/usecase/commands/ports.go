package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentOutcome is the synchronous result of a charge attempt.
type PaymentOutcome struct {
	Paid      bool
	Reference string
}

// PaymentGateway charges a user before their booking is confirmed.
// A declined charge is a normal outcome, not an error.
type PaymentGateway interface {
	Charge(ctx context.Context, userID uuid.UUID, amountCents int64, currency string) (PaymentOutcome, error)
}
