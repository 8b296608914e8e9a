package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ThresholdQueries interface {
	GetThresholdSetForDevice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetThresholdSetForDeviceParams) (sqlc.ThresholdSets, error)
	UpsertThresholdSet(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertThresholdSetParams) (sqlc.ThresholdSets, error)
	ListDevicesUsingFleetDefault(ctx context.Context, db sqlc.DBTX) ([]string, error)
}

type ThresholdRepository struct {
	queries ThresholdQueries
	db      sqlc.DBTX
}

func NewThresholdRepository(queries ThresholdQueries, db sqlc.DBTX) *ThresholdRepository {
	return &ThresholdRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ThresholdRepository) FindForDevice(ctx context.Context, deviceID string, cropID *string) (*threshold.Set, error) {
	if deviceID == "" {
		deviceID = threshold.AllDevices
	}
	row, err := r.queries.GetThresholdSetForDevice(ctx, r.db, sqlc.GetThresholdSetForDeviceParams{
		DeviceID: deviceID,
		CropID:   pgconv.StringPtrToPgtype(cropID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("threshold set not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find threshold set", err)
	}
	return thresholdRowToDomain(row)
}

func (r *ThresholdRepository) Save(ctx context.Context, set *threshold.Set, updatedBy *uuid.UUID) (*threshold.Set, error) {
	payload, err := encodeRanges(set.Ranges())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode threshold ranges", err, infra.KindDBFailure)
	}

	row, err := r.queries.UpsertThresholdSet(ctx, r.db, sqlc.UpsertThresholdSetParams{
		DeviceID:   set.DeviceID(),
		CropID:     pgconv.StringPtrToPgtype(set.CropID()),
		Parameters: payload,
		UpdatedBy:  pgconv.UUIDPtrToPgtype(updatedBy),
		UpdatedAt:  pgconv.TimeToPgtype(set.UpdatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save threshold set", err)
	}
	return thresholdRowToDomain(row)
}

func (r *ThresholdRepository) ListDevicesUsingFleetDefault(ctx context.Context) ([]string, error) {
	ids, err := r.queries.ListDevicesUsingFleetDefault(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list devices", err)
	}
	return ids, nil
}

func encodeRanges(ranges map[threshold.Parameter]threshold.Range) ([]byte, error) {
	out := make(map[string]threshold.Range, len(ranges))
	for p, r := range ranges {
		out[p.String()] = r
	}
	return json.Marshal(out)
}

func thresholdRowToDomain(row sqlc.ThresholdSets) (*threshold.Set, error) {
	var raw map[string]threshold.Range
	if err := json.Unmarshal(row.Parameters, &raw); err != nil {
		return nil, infra.WrapRepoErr("failed to decode threshold ranges", err, infra.KindDBFailure)
	}

	ranges := make(map[threshold.Parameter]threshold.Range, len(raw))
	for name, r := range raw {
		p, err := threshold.NewParameter(name)
		if err != nil {
			slog.Warn("ignoring unknown stored threshold parameter", "device_id", row.DeviceID, "parameter", name)
			continue
		}
		ranges[p] = r
	}

	set, err := threshold.NewSet(row.DeviceID, pgconv.StringPtrFromPgtype(row.CropID), ranges, pgconv.TimeFromPgtype(row.UpdatedAt))
	if err != nil {
		return nil, infra.WrapRepoErr("stored threshold set is invalid", err, infra.KindDBFailure)
	}
	return set, nil
}
