package commands

import (
	"context"
	"log/slog"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/pkg/metrics"
	"hydro-command/internal/usecase/shared"
)

type IngestRequest struct {
	DeviceID   string
	Timestamp  *time.Time
	Readings   map[threshold.Parameter]float64
	WaterLevel string
}

type IngestResult struct {
	ReadingID int64
	DeviceID  string
	Timestamp time.Time
	Alerts    []*alert.Record
}

type TelemetryCommands interface {
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
}

type telemetryUseCaseImpl struct {
	uow       shared.UnitOfWork
	evaluator AlertEvaluator
	notifier  AlertNotifier
	clock     clock.Clock
}

func NewTelemetryUseCase(uow shared.UnitOfWork, evaluator AlertEvaluator, notifier AlertNotifier, clk clock.Clock) TelemetryCommands {
	return &telemetryUseCaseImpl{
		uow:       uow,
		evaluator: evaluator,
		notifier:  notifier,
		clock:     clk,
	}
}

// Ingest stores the reading together with the alerts it raised, then notifies
// subscribers. Notification failures are logged and never fail ingestion.
func (uc *telemetryUseCaseImpl) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	start := time.Now()
	result, err := uc.ingest(ctx, req)
	if err != nil {
		metrics.ObserveIngest(metrics.ResultError, time.Since(start))
		return nil, err
	}
	metrics.ObserveIngest(metrics.ResultSuccess, time.Since(start))
	return result, nil
}

func (uc *telemetryUseCaseImpl) ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	now := uc.clock.Now()
	ts := now
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		ts = *req.Timestamp
	}

	sample, err := telemetry.NewSample(req.DeviceID, ts, req.Readings, req.WaterLevel)
	if err != nil {
		return nil, err
	}

	// Evaluated outside the transaction: a retried transaction must not
	// consume the cooldown window twice. A failed one gives the window back.
	records := uc.evaluator.Evaluate(ctx, sample)

	var readingID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Telemetry().Insert(ctx, sample)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.ErrDeviceNotFound
			}
			return derr
		}
		readingID = id
		for _, rec := range records {
			if derr := tx.Alerts().Insert(ctx, rec, &readingID); derr != nil {
				return derr
			}
		}
		return tx.Devices().TouchLastSeen(ctx, sample.DeviceID, now)
	})
	if err != nil {
		if len(records) > 0 {
			uc.evaluator.Release(ctx, records)
		}
		return nil, err
	}

	for _, rec := range records {
		metrics.IncAlertEmitted(rec.Severity().String())
	}
	if len(records) > 0 {
		if nerr := uc.notifier.NotifyAlerts(ctx, records); nerr != nil {
			slog.WarnContext(ctx, "alert notification failed", "device_id", sample.DeviceID, "alerts", len(records), "error", nerr)
		}
	}

	slog.DebugContext(ctx, "telemetry ingested", "device_id", sample.DeviceID, "reading_id", readingID, "alerts", len(records))
	return &IngestResult{
		ReadingID: readingID,
		DeviceID:  sample.DeviceID,
		Timestamp: sample.Timestamp,
		Alerts:    records,
	}, nil
}
