package components

import (
	"coach-flow/internal/handler"
	"coach-flow/internal/handler/api"
	"coach-flow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewUnavailabilityHandler,
		api.NewTrainerHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
