package uow

import (
	"context"

	"hydro-command/internal/infra/repository"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const maxTxRetries = 3

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in one transaction: an ingested reading and the alerts it
// raised commit together or not at all.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return shared.RunInTx(ctx, u.pool, maxTxRetries, func(dbtx sqlc.DBTX) error {
		return fn(ctx, &pgTx{dbtx: dbtx, q: u.q})
	})
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	telemetryRepo shared.TelemetryRepository
	alertRepo     shared.AlertRepository
	deviceRepo    shared.DeviceRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Telemetry() shared.TelemetryRepository {
	if t.telemetryRepo == nil {
		t.telemetryRepo = repository.NewTelemetryRepository(t.q, t.dbtx)
	}
	return t.telemetryRepo
}

func (t *pgTx) Alerts() shared.AlertRepository {
	if t.alertRepo == nil {
		t.alertRepo = repository.NewAlertRepository(t.q, t.dbtx)
	}
	return t.alertRepo
}

func (t *pgTx) Devices() shared.DeviceRepository {
	if t.deviceRepo == nil {
		t.deviceRepo = repository.NewDeviceRepository(t.q, t.dbtx)
	}
	return t.deviceRepo
}
