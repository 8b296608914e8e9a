package components

import (
	"hydro-command/internal/infra/cache"
	"hydro-command/internal/infra/readstore"
	"hydro-command/internal/infra/repository"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/infra/uow"
	"hydro-command/internal/usecase/queries"
	"hydro-command/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Command
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommandReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommandReadStore,
			fx.As(new(queries.CommandReadStore)),
		),
		// Alert
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AlertReadQueries)),
		),
		fx.Annotate(
			readstore.NewAlertReadStore,
			fx.As(new(queries.AlertReadStore)),
		),
		// Telemetry
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TelemetryReadQueries)),
		),
		fx.Annotate(
			readstore.NewTelemetryReadStore,
			fx.As(new(queries.TelemetryReadStore)),
		),
		// Device
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DeviceReadQueries)),
		),
		fx.Annotate(
			readstore.NewDeviceReadStore,
			fx.As(new(queries.DeviceReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Command
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CommandQueries)),
		),
		fx.Annotate(
			repository.NewCommandRepository,
			fx.As(new(shared.CommandRepository)),
		),
		// Device
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DeviceQueries)),
		),
		fx.Annotate(
			repository.NewDeviceRepository,
			fx.As(new(shared.DeviceRepository)),
		),
		// Threshold
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ThresholdQueries)),
		),
		fx.Annotate(
			repository.NewThresholdRepository,
			fx.As(
				new(shared.ThresholdRepository),
				new(cache.ThresholdStore),
				new(queries.ThresholdReader),
			),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
