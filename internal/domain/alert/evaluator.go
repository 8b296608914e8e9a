package alert

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
)

// DefaultCooldownWindow suppresses repeats of the same condition per device.
const DefaultCooldownWindow = 60 * time.Second

// ThresholdSource never fails; implementations degrade to default ranges.
type ThresholdSource interface {
	Get(ctx context.Context, deviceID string) *threshold.Set
}

// Cooldown is the shared suppression table keyed by device and condition.
// Acquire returns true when the caller may emit and starts a new window.
// Release ends a window early.
type Cooldown interface {
	Acquire(ctx context.Context, key string, window time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type Evaluator struct {
	thresholds ThresholdSource
	cooldown   Cooldown
	policy     CooldownPolicy
	window     time.Duration
}

func NewEvaluator(thresholds ThresholdSource, cooldown Cooldown, policy CooldownPolicy, window time.Duration) *Evaluator {
	if window <= 0 {
		window = DefaultCooldownWindow
	}
	if policy == "" {
		policy = PolicyBinaryOnly
	}
	return &Evaluator{
		thresholds: thresholds,
		cooldown:   cooldown,
		policy:     policy,
		window:     window,
	}
}

func (e *Evaluator) Policy() CooldownPolicy {
	return e.policy
}

// Evaluate returns the persisted-tier records for one sample. Warning-band
// readings are never returned.
func (e *Evaluator) Evaluate(ctx context.Context, sample telemetry.Sample) []*Record {
	set := e.thresholds.Get(ctx, sample.DeviceID)

	var records []*Record
	for _, p := range threshold.Parameters {
		v, ok := sample.Reading(p)
		if !ok {
			continue
		}
		r, ok := set.Range(p)
		if !ok || !Breaches(v, r) {
			continue
		}
		if e.policy == PolicyUniform && !e.acquire(ctx, sample.DeviceID, string(p)) {
			continue
		}
		records = append(records, newRecord(sample.DeviceID, string(p), numericMessage(p, v, r), SeverityAlert, sample.Timestamp))
	}

	if sample.WaterLevel.IsLow() && e.acquire(ctx, sample.DeviceID, string(ConditionWaterLevel)) {
		records = append(records, newRecord(
			sample.DeviceID,
			string(ConditionWaterLevel),
			"Water level below required level",
			SeverityError,
			sample.Timestamp,
		))
	}
	return records
}

// Release gives back the windows opened for records that were never stored,
// so the next sample can raise them again.
func (e *Evaluator) Release(ctx context.Context, records []*Record) {
	for _, rec := range records {
		if !e.cooldownGoverned(rec) {
			continue
		}
		key := CooldownKey(rec.DeviceID(), rec.Parameter())
		if err := e.cooldown.Release(ctx, key); err != nil {
			slog.WarnContext(ctx, "cooldown release failed", "key", key, "error", err)
		}
	}
}

func (e *Evaluator) cooldownGoverned(rec *Record) bool {
	return rec.Parameter() == string(ConditionWaterLevel) || e.policy == PolicyUniform
}

// acquire fails open: a broken cooldown table must not hide alerts.
func (e *Evaluator) acquire(ctx context.Context, deviceID, condition string) bool {
	ok, err := e.cooldown.Acquire(ctx, CooldownKey(deviceID, condition), e.window)
	if err != nil {
		slog.WarnContext(ctx, "cooldown unavailable, emitting alert",
			"device_id", deviceID, "condition", condition, "error", err)
		return true
	}
	return ok
}

func CooldownKey(deviceID, condition string) string {
	return deviceID + ":" + condition
}

func numericMessage(p threshold.Parameter, v float64, r threshold.Range) string {
	unit := p.Unit()
	return fmt.Sprintf("%s alert: %s%s (Range: %s-%s%s)",
		p.Label(), formatNumber(v), unit, formatNumber(r.Min), formatNumber(r.Max), unit)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
