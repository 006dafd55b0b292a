package bootstrap

import (
	"premium-reconciler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.ExternalModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
