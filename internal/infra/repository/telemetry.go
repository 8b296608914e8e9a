package repository

import (
	"context"

	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type TelemetryQueries interface {
	InsertSensorReading(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSensorReadingParams) (int64, error)
}

type TelemetryRepository struct {
	queries TelemetryQueries
	db      sqlc.DBTX
}

func NewTelemetryRepository(queries TelemetryQueries, db sqlc.DBTX) *TelemetryRepository {
	return &TelemetryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TelemetryRepository) Insert(ctx context.Context, s telemetry.Sample) (int64, error) {
	opt := func(p threshold.Parameter) pgtype.Float8 {
		if v, ok := s.Reading(p); ok {
			return pgconv.Float8(v)
		}
		return pgtype.Float8{}
	}
	req := func(p threshold.Parameter) float64 {
		v, _ := s.Reading(p)
		return v
	}

	id, err := r.queries.InsertSensorReading(ctx, r.db, sqlc.InsertSensorReadingParams{
		DeviceID:          s.DeviceID,
		RecordedAt:        pgconv.TimeToPgtype(s.Timestamp),
		RoomTemp:          req(threshold.Temperature),
		Humidity:          req(threshold.Humidity),
		Ph:                req(threshold.PH),
		Ec:                req(threshold.EC),
		SubstrateMoisture: req(threshold.SubstrateMoisture),
		Ppm:               opt(threshold.PPM),
		Nitrogen:          opt(threshold.Nitrogen),
		Phosphorus:        opt(threshold.Phosphorus),
		Potassium:         opt(threshold.Potassium),
		Calcium:           opt(threshold.Calcium),
		Magnesium:         opt(threshold.Magnesium),
		Iron:              opt(threshold.Iron),
		WaterLevelStatus:  string(s.WaterLevel),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert sensor reading", err)
	}
	return id, nil
}
