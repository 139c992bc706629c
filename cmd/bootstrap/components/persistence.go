package components

import (
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/infra/payment"
	"leftoversaver/internal/infra/readstore"
	"leftoversaver/internal/infra/uow"
	"leftoversaver/internal/pkg/config"
	"leftoversaver/internal/usecase/commands"
	"leftoversaver/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewPaymentGateway,
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewSimulator(cfg.Payment)
}
