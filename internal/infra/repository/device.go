package repository

import (
	"context"
	"time"

	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"
	"hydro-command/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DeviceQueries interface {
	GetDeviceByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Devices, error)
	CreateDevice(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDeviceParams) (sqlc.Devices, error)
	TouchDeviceLastSeen(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchDeviceLastSeenParams) error
	CreateDeviceAPIKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDeviceAPIKeyParams) (sqlc.CreateDeviceAPIKeyRow, error)
	GetDeviceAPIKeyByPrefix(ctx context.Context, db sqlc.DBTX, keyPrefix string) (sqlc.GetDeviceAPIKeyByPrefixRow, error)
	TouchDeviceAPIKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchDeviceAPIKeyParams) error
}

type DeviceRepository struct {
	queries DeviceQueries
	db      sqlc.DBTX
}

func NewDeviceRepository(queries DeviceQueries, db sqlc.DBTX) *DeviceRepository {
	return &DeviceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DeviceRepository) FindByID(ctx context.Context, id string) (*shared.DeviceSnapshot, error) {
	row, err := r.queries.GetDeviceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("device not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find device by ID", err)
	}
	return toDeviceSnapshot(row), nil
}

func (r *DeviceRepository) Create(ctx context.Context, id, name string, location *string) (*shared.DeviceSnapshot, error) {
	row, err := r.queries.CreateDevice(ctx, r.db, sqlc.CreateDeviceParams{
		ID:       id,
		Name:     name,
		Location: pgconv.StringPtrToPgtype(location),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create device", err)
	}
	return toDeviceSnapshot(row), nil
}

func (r *DeviceRepository) TouchLastSeen(ctx context.Context, id string, at time.Time) error {
	err := r.queries.TouchDeviceLastSeen(ctx, r.db, sqlc.TouchDeviceLastSeenParams{
		ID:         id,
		LastSeenAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update device last seen", err)
	}
	return nil
}

func (r *DeviceRepository) CreateAPIKey(ctx context.Context, deviceID, prefix, hash string, expiresAt *time.Time) (uuid.UUID, error) {
	exp := pgtype.Timestamptz{}
	if expiresAt != nil {
		exp = pgconv.TimeToPgtype(*expiresAt)
	}
	row, err := r.queries.CreateDeviceAPIKey(ctx, r.db, sqlc.CreateDeviceAPIKeyParams{
		DeviceID:  deviceID,
		KeyPrefix: prefix,
		KeyHash:   hash,
		ExpiresAt: exp,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create device api key", err)
	}
	return row.ID, nil
}

func (r *DeviceRepository) FindAPIKeyByPrefix(ctx context.Context, prefix string) (*shared.APIKeyRecord, error) {
	row, err := r.queries.GetDeviceAPIKeyByPrefix(ctx, r.db, prefix)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("api key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find api key", err)
	}
	return &shared.APIKeyRecord{
		ID:         row.ID,
		DeviceID:   row.DeviceID,
		Prefix:     row.KeyPrefix,
		Hash:       row.KeyHash,
		IsActive:   row.IsActive,
		ExpiresAt:  pgconv.TimePtrFromPgtype(row.ExpiresAt),
		LastUsedAt: pgconv.TimePtrFromPgtype(row.LastUsedAt),
	}, nil
}

func (r *DeviceRepository) TouchAPIKey(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.TouchDeviceAPIKey(ctx, r.db, sqlc.TouchDeviceAPIKeyParams{
		ID:         id,
		LastUsedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update api key last used", err)
	}
	return nil
}

func toDeviceSnapshot(row sqlc.Devices) *shared.DeviceSnapshot {
	return &shared.DeviceSnapshot{
		ID:         row.ID,
		Name:       row.Name,
		Location:   pgconv.StringPtrFromPgtype(row.Location),
		IsActive:   row.IsActive,
		LastSeenAt: pgconv.TimePtrFromPgtype(row.LastSeenAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
