package bootstrap

import (
	"event-quote-sim/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	PipelineModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
