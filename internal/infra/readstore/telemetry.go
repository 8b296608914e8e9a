package readstore

import (
	"context"
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"
	"hydro-command/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type TelemetryReadQueries interface {
	GetLatestSensorReading(ctx context.Context, db sqlc.DBTX, deviceID string) (sqlc.GetLatestSensorReadingRow, error)
	AggregateSensorReadings(ctx context.Context, db sqlc.DBTX, arg sqlc.AggregateSensorReadingsParams) ([]sqlc.AggregateSensorReadingsRow, error)
	ListAlertsSince(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAlertsSinceParams) ([]sqlc.ListAlertsSinceRow, error)
}

type TelemetryReadStore struct {
	queries TelemetryReadQueries
	db      sqlc.DBTX
}

func NewTelemetryReadStore(queries TelemetryReadQueries, db sqlc.DBTX) *TelemetryReadStore {
	return &TelemetryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TelemetryReadStore) Latest(ctx context.Context, deviceID string) (*queries.ReadingView, error) {
	row, err := r.queries.GetLatestSensorReading(ctx, r.db, deviceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no sensor reading", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get latest sensor reading", err)
	}

	readings := map[string]float64{
		threshold.Temperature.String():       row.RoomTemp,
		threshold.Humidity.String():          row.Humidity,
		threshold.PH.String():                row.Ph,
		threshold.EC.String():                row.Ec,
		threshold.SubstrateMoisture.String(): row.SubstrateMoisture,
	}
	optional := map[threshold.Parameter]pgtype.Float8{
		threshold.PPM:        row.Ppm,
		threshold.Nitrogen:   row.Nitrogen,
		threshold.Phosphorus: row.Phosphorus,
		threshold.Potassium:  row.Potassium,
		threshold.Calcium:    row.Calcium,
		threshold.Magnesium:  row.Magnesium,
		threshold.Iron:       row.Iron,
	}
	for p, v := range optional {
		if v.Valid {
			readings[p.String()] = v.Float64
		}
	}

	return &queries.ReadingView{
		ID:         row.ID,
		DeviceID:   row.DeviceID,
		Timestamp:  pgconv.TimeFromPgtype(row.RecordedAt),
		Readings:   readings,
		WaterLevel: row.WaterLevelStatus,
	}, nil
}

func (r *TelemetryReadStore) Aggregate(ctx context.Context, deviceID string, since time.Time, intervalMinutes int32) ([]queries.ExportBucket, error) {
	rows, err := r.queries.AggregateSensorReadings(ctx, r.db, sqlc.AggregateSensorReadingsParams{
		IntervalMinutes: intervalMinutes,
		DeviceID:        deviceID,
		Since:           pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sensor readings", err)
	}
	buckets := make([]queries.ExportBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, queries.ExportBucket{
			Bucket:       pgconv.TimeFromPgtype(row.Bucket),
			Temperature:  row.Temperature,
			PH:           row.Ph,
			EC:           row.Ec,
			Moisture:     row.Moisture,
			Humidity:     row.Humidity,
			ReadingCount: row.ReadingCount,
		})
	}
	return buckets, nil
}

func (r *TelemetryReadStore) AlertsSince(ctx context.Context, deviceID string, since time.Time) ([]queries.AlertView, error) {
	rows, err := r.queries.ListAlertsSince(ctx, r.db, sqlc.ListAlertsSinceParams{
		DeviceID:  deviceID,
		CreatedAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list alerts for export", err)
	}
	alerts := make([]queries.AlertView, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, queries.AlertView{
			ID:        row.ID,
			DeviceID:  row.DeviceID,
			Parameter: row.Parameter,
			Message:   row.Message,
			Severity:  row.Severity,
			Timestamp: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return alerts, nil
}
