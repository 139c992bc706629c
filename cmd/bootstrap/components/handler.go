package components

import (
	"leftoversaver/internal/handler"
	"leftoversaver/internal/handler/api"
	"leftoversaver/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewBookingHandler,
		api.NewStoreHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
