package components

import (
	"lunchbox/internal/handler"
	"lunchbox/internal/handler/api"
	"lunchbox/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLunchHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
