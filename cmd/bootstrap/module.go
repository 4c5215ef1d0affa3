package bootstrap

import (
	"beer-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
