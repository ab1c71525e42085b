package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLocationHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewParticipantHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
