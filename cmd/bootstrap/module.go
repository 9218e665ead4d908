package bootstrap

import (
	"museum-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything below the HTTP surface; bookctl runs on it alone.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.PlatformModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
