package components

import (
	"fmt"
	"strings"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/command"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra/cache"
	"hydro-command/internal/infra/cooldown"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/usecase"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseAlertingModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewThresholdDefaults,
	func(clk clock.Clock, cfg config.Config) *command.Factory {
		return command.NewFactory(clk, cfg.Command.DefaultTTL)
	},
)

var usecaseAlertingModule = fx.Module("usecase/alerting",
	fx.Provide(
		NewThresholdCache,
		func(c *cache.ThresholdCache) alert.ThresholdSource { return c },
		func(c *cache.ThresholdCache) commands.ThresholdInvalidator { return c },
		NewCooldown,
		fx.Annotate(
			NewEvaluator,
			fx.As(new(commands.AlertEvaluator)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCommandUseCase,
		commands.NewThresholdUseCase,
		commands.NewTelemetryUseCase,
		commands.NewAlertUseCase,
		commands.NewDeviceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCommandQueries,
		queries.NewThresholdQueries,
		queries.NewTelemetryQueries,
		queries.NewAlertQueries,
		queries.NewDeviceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewDeviceAuthenticator,
	),
)

// NewThresholdDefaults layers THRESHOLD_DEFAULTS_FILE over the built-in ranges.
func NewThresholdDefaults(cfg config.Config) (*threshold.Set, error) {
	specs, err := config.LoadThresholdDefaults(cfg.Threshold.DefaultsFile)
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]threshold.Range, len(specs))
	for name, r := range specs {
		overrides[name] = threshold.Range{Min: r.Min, Max: r.Max}
	}
	return threshold.Defaults(overrides)
}

func NewThresholdCache(store cache.ThresholdStore, clk clock.Clock, cfg config.Config, defaults *threshold.Set) *cache.ThresholdCache {
	return cache.NewThresholdCache(store, clk, cfg.Threshold.CacheTTL, defaults)
}

// NewCooldown selects the shared redis table when configured. redis is nil
// when REDIS_ADDR is unset.
func NewCooldown(cfg config.Config, clk clock.Clock, client *redis.Client) (alert.Cooldown, error) {
	switch strings.ToLower(cfg.Alert.CooldownBackend) {
	case "", "memory":
		return cooldown.NewMemory(clk), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("ALERT_COOLDOWN_BACKEND=redis requires REDIS_ADDR")
		}
		return cooldown.NewRedis(client, cfg.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown ALERT_COOLDOWN_BACKEND %q", cfg.Alert.CooldownBackend)
	}
}

func NewEvaluator(thresholds alert.ThresholdSource, cd alert.Cooldown, cfg config.Config) (*alert.Evaluator, error) {
	policy, err := alert.NewCooldownPolicy(cfg.Alert.CooldownPolicy)
	if err != nil {
		return nil, err
	}
	return alert.NewEvaluator(thresholds, cd, policy, cfg.Alert.CooldownWindow), nil
}
