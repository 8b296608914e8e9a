package shared

import (
	"context"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/command"
	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	sqlc "hydro-command/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for multi-table writes with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Telemetry() TelemetryRepository
	Alerts() AlertRepository
	Devices() DeviceRepository
	DB() sqlc.DBTX
}

type CommandRepository interface {
	Insert(ctx context.Context, cmd *command.Command) (int64, error)
	// Claim atomically moves every claimable command of the device to sent
	// and returns them in delivery order.
	Claim(ctx context.Context, deviceID string, now time.Time) ([]*command.Command, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type DeviceRepository interface {
	FindByID(ctx context.Context, id string) (*DeviceSnapshot, error)
	Create(ctx context.Context, id, name string, location *string) (*DeviceSnapshot, error)
	TouchLastSeen(ctx context.Context, id string, at time.Time) error
	CreateAPIKey(ctx context.Context, deviceID, prefix, hash string, expiresAt *time.Time) (uuid.UUID, error)
	FindAPIKeyByPrefix(ctx context.Context, prefix string) (*APIKeyRecord, error)
	TouchAPIKey(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ThresholdRepository interface {
	// FindForDevice returns the device's set, else the fleet default set.
	FindForDevice(ctx context.Context, deviceID string, cropID *string) (*threshold.Set, error)
	Save(ctx context.Context, set *threshold.Set, updatedBy *uuid.UUID) (*threshold.Set, error)
	ListDevicesUsingFleetDefault(ctx context.Context) ([]string, error)
}

type TelemetryRepository interface {
	Insert(ctx context.Context, sample telemetry.Sample) (int64, error)
}

type AlertRepository interface {
	Insert(ctx context.Context, rec *alert.Record, readingID *int64) error
	FindByID(ctx context.Context, id uuid.UUID) (*alert.Record, error)
	Dismiss(ctx context.Context, alertID, userID uuid.UUID, at time.Time) (bool, error)
	DismissAll(ctx context.Context, userID uuid.UUID, deviceID *string, at time.Time) (int64, error)
}
