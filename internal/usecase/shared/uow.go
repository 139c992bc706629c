package shared

import (
	"context"
	"time"

	"leftoversaver/internal/domain/booking"
	"leftoversaver/internal/domain/offer"
	"leftoversaver/internal/domain/store"
	"leftoversaver/internal/domain/user"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork interface {
	// Within: full transaction for write operations, with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command-side reads outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Bookings() BookingRepository
	Stores() StoreRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error)
	// LockStock reads the offer's stock under a row lock. found is false
	// when the offer record does not exist.
	LockStock(ctx context.Context, offerID uuid.UUID) (stock int, found bool, err error)
	DecrementStock(ctx context.Context, offerID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error
}

type StoreRepository interface {
	Upsert(ctx context.Context, s *store.Store) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	SaveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
