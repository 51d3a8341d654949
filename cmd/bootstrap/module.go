package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything a command needs to run booking use cases.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// Module is the full HTTP server.
var Module = fx.Options(
	CoreModule,
	JWTModule,
	JobsModule,
	components.HandlerModule,
	fx.Invoke(StartScheduler),
)
