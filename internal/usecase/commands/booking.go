package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"leftoversaver/internal/domain/booking"
	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/pkg/clock"
	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/queries"
	"leftoversaver/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotOwned = errs.New("booking not owned by user")
	ErrPaymentFailed   = errs.New("payment failed")
)

const (
	notificationKindPush = "push"

	topicBookingCreated = "booking_created"
	topicPickupReminder = "pickup_reminder"

	pickupReminderDelay = time.Hour
)

type CreateBookingResult struct {
	Booking *queries.BookingView
	Paid    bool
}

type BookingCommands interface {
	Book(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	gateway        PaymentGateway
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	offerSnap, err := uc.uow.CommandReads().OfferByID(ctx, req.OfferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	paid := false
	if !req.PayLater {
		outcome, chargeErr := uc.gateway.Charge(ctx, userID, offerSnap.PriceCents, offerSnap.Currency)
		if chargeErr != nil {
			return nil, errs.Mark(chargeErr, ErrPaymentFailed)
		}
		paid = outcome.Paid
	}

	snapshot, err := booking.NewOfferSnapshot(offerSnap.Name, offerSnap.PriceCents, offerSnap.Currency, offerSnap.PickupUntil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity := booking.NewBooking(offerSnap.ID, userID, snapshot, paid)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if paid {
			if txErr := uc.takeStock(ctx, tx, offerSnap.ID); txErr != nil {
				return txErr
			}
		}

		if _, txErr := tx.Bookings().Create(ctx, entity); txErr != nil {
			return txErr
		}

		return uc.enqueueBookingNotifications(ctx, tx, entity)
	})
	if err != nil {
		return nil, mapTransactionError(err)
	}

	view, err := uc.bookingQueries.GetByID(ctx, userID, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{Booking: view, Paid: paid}, nil
}

// takeStock holds the offer row lock for the rest of the transaction, so
// concurrent bookings of the same offer serialize here. An offer whose
// row has vanished is treated as having one unit left and is booked
// without a decrement.
func (uc *bookingUseCaseImpl) takeStock(ctx context.Context, tx shared.Tx, offerID uuid.UUID) error {
	stock, found, err := tx.Offers().LockStock(ctx, offerID)
	if err != nil {
		return err
	}
	if !found {
		slog.Warn("booking offer without stock row", "offer_id", offerID)
		return nil
	}
	if stock <= 0 {
		return errs.ErrSoldOut
	}
	return tx.Offers().DecrementStock(ctx, offerID)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}
		if snap.UserID != actorID {
			return ErrBookingNotOwned
		}

		// Cancelling twice is a no-op. Stock is never restored; a
		// cancelled pickup stays sold.
		if snap.Status == string(booking.StatusCancelled) {
			return nil
		}

		return tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusCancelled)
	})
	if err != nil {
		return mapTransactionError(err)
	}
	return nil
}

func (uc *bookingUseCaseImpl) enqueueBookingNotifications(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": b.ID(),
		"offer_id":   b.OfferID(),
		"user_id":    b.UserID(),
		"code":       b.Code(),
		"offer_name": b.Snapshot().Name,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	now := uc.clock.Now()
	if err := tx.Notifications().CreateJob(ctx, notificationKindPush, topicBookingCreated, payload, now); err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, notificationKindPush, topicPickupReminder, payload, now.Add(pickupReminderDelay))
}

func mapTransactionError(err error) error {
	switch {
	case errors.Is(err, shared.ErrMaxRetriesExceeded):
		return errs.Mark(err, errs.ErrTransientConflict)
	default:
		return err
	}
}
