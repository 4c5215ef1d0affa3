package components

import (
	"beer-service/internal/handler"
	"beer-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBeerHandler,
		api.NewCustomerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
