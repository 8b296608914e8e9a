package components

import (
	"time"

	"hydro-command/internal/handler"
	"hydro-command/internal/handler/api"
	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/infra/notify"
	"hydro-command/internal/infra/ratelimit"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCommandHandler,
		api.NewThresholdHandler,
		api.NewSensorHandler,
		api.NewExportHandler,
		api.NewDeviceHandler,
		NewAlertHandler,
		middleware.NewAuthMiddleware,
		middleware.NewDeviceAuthMiddleware,
		fx.Annotate(
			NewIngestLimiter,
			fx.ResultTags(`name:"ingest"`),
		),
		fx.Annotate(
			NewExportLimiter,
			fx.ResultTags(`name:"export"`),
		),
	),
	fx.Invoke(handler.NewRouter),
)

// NewAlertHandler streams from the hub and reuses the CORS origins for the
// websocket origin check.
func NewAlertHandler(cmds commands.AlertCommands, q queries.AlertQueries, hub *notify.Hub, cfg config.Config) *api.AlertHandler {
	return api.NewAlertHandler(cmds, q, hub, cfg.CORS.AllowOrigins)
}

func NewIngestLimiter(cfg config.Config, clk clock.Clock, client *redis.Client) ratelimit.Limiter {
	return newLimiter(client, cfg, clk, "ingest", cfg.RateLimit.IngestPerMinute)
}

func NewExportLimiter(cfg config.Config, clk clock.Clock, client *redis.Client) ratelimit.Limiter {
	return newLimiter(client, cfg, clk, "export", cfg.RateLimit.ExportPerMinute)
}

func newLimiter(client *redis.Client, cfg config.Config, clk clock.Clock, scope string, perMinute int) ratelimit.Limiter {
	if client != nil {
		return ratelimit.NewRedis(client, cfg.Redis.KeyPrefix+scope+":", perMinute, time.Minute)
	}
	return ratelimit.NewMemory(clk, perMinute, time.Minute)
}
