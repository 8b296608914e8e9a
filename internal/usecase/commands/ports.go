package commands

import (
	"context"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/telemetry"
)

// AlertEvaluator turns a validated sample into the records to persist.
// Release reopens the cooldown for records that could not be stored.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, sample telemetry.Sample) []*alert.Record
	Release(ctx context.Context, records []*alert.Record)
}

// AlertNotifier pushes persisted records to live subscribers.
type AlertNotifier interface {
	NotifyAlerts(ctx context.Context, records []*alert.Record) error
}

type ThresholdInvalidator interface {
	Invalidate()
}
