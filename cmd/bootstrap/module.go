package bootstrap

import (
	"hydro-command/cmd/bootstrap/components"
	"hydro-command/internal/pkg/metrics"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Invoke(metrics.Init),
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
