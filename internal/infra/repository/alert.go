package repository

import (
	"context"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AlertQueries interface {
	InsertAlert(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAlertParams) error
	GetAlertByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Alerts, error)
	DismissAlert(ctx context.Context, db sqlc.DBTX, arg sqlc.DismissAlertParams) (int64, error)
	DismissAllAlerts(ctx context.Context, db sqlc.DBTX, arg sqlc.DismissAllAlertsParams) (int64, error)
}

type AlertRepository struct {
	queries AlertQueries
	db      sqlc.DBTX
}

func NewAlertRepository(queries AlertQueries, db sqlc.DBTX) *AlertRepository {
	return &AlertRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AlertRepository) Insert(ctx context.Context, rec *alert.Record, readingID *int64) error {
	err := r.queries.InsertAlert(ctx, r.db, sqlc.InsertAlertParams{
		ID:        rec.ID(),
		DeviceID:  rec.DeviceID(),
		Parameter: rec.Parameter(),
		Message:   rec.Message(),
		Severity:  rec.Severity().String(),
		ReadingID: pgconv.Int8Ptr(readingID),
		CreatedAt: pgconv.TimeToPgtype(rec.Timestamp()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert alert", err)
	}
	return nil
}

func (r *AlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*alert.Record, error) {
	row, err := r.queries.GetAlertByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("alert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find alert", err)
	}
	rec, err := alert.Reconstruct(row.ID, row.DeviceID, row.Parameter, row.Message, alert.Severity(row.Severity), pgconv.TimeFromPgtype(row.CreatedAt))
	if err != nil {
		return nil, infra.WrapRepoErr("stored alert is invalid", err, infra.KindDBFailure)
	}
	return rec, nil
}

// Dismiss reports false when the user had already dismissed the alert.
func (r *AlertRepository) Dismiss(ctx context.Context, alertID, userID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.DismissAlert(ctx, r.db, sqlc.DismissAlertParams{
		AlertID:     alertID,
		UserID:      userID,
		DismissedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to dismiss alert", err)
	}
	return n > 0, nil
}

// DismissAll dismisses every alert, optionally limited to one device, and
// returns how many were newly dismissed.
func (r *AlertRepository) DismissAll(ctx context.Context, userID uuid.UUID, deviceID *string, at time.Time) (int64, error) {
	n, err := r.queries.DismissAllAlerts(ctx, r.db, sqlc.DismissAllAlertsParams{
		UserID:      userID,
		DismissedAt: pgconv.TimeToPgtype(at),
		DeviceID:    pgconv.StringPtrToPgtype(deviceID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to dismiss alerts", err)
	}
	return n, nil
}
