package readstore

import (
	"context"

	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"
	"hydro-command/internal/usecase/queries"

	"github.com/google/uuid"
)

type AlertReadQueries interface {
	ListRecentAlerts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentAlertsParams) ([]sqlc.ListRecentAlertsRow, error)
}

type AlertReadStore struct {
	queries AlertReadQueries
	db      sqlc.DBTX
}

func NewAlertReadStore(queries AlertReadQueries, db sqlc.DBTX) *AlertReadStore {
	return &AlertReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AlertReadStore) Recent(ctx context.Context, userID uuid.UUID, deviceID *string, limit int32) ([]*queries.AlertView, error) {
	rows, err := r.queries.ListRecentAlerts(ctx, r.db, sqlc.ListRecentAlertsParams{
		DeviceID: pgconv.StringPtrToPgtype(deviceID),
		UserID:   userID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent alerts", err)
	}

	views := make([]*queries.AlertView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.AlertView{
			ID:        row.ID,
			DeviceID:  row.DeviceID,
			Parameter: row.Parameter,
			Message:   row.Message,
			Severity:  row.Severity,
			Timestamp: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
