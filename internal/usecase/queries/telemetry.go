package queries

import (
	"context"
	"strings"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
)

const (
	DefaultExportHours    = 24
	MaxExportHours        = 720
	DefaultExportInterval = 60
	MaxExportInterval     = 1440
)

var (
	ErrReadingNotFound = errs.New("no readings for device")
	ErrNoExportData    = errs.New("no data found for export window")
)

type TelemetryReadStore interface {
	Latest(ctx context.Context, deviceID string) (*ReadingView, error)
	Aggregate(ctx context.Context, deviceID string, since time.Time, intervalMinutes int32) ([]ExportBucket, error)
	AlertsSince(ctx context.Context, deviceID string, since time.Time) ([]AlertView, error)
}

// ExportRequest carries raw query values; zero values take the defaults and
// out-of-range values are clamped.
type ExportRequest struct {
	DeviceID        string
	Hours           int
	IntervalMinutes int
}

type TelemetryQueries interface {
	Latest(ctx context.Context, deviceID string) (*ReadingView, error)
	Export(ctx context.Context, req ExportRequest) (*ExportReport, error)
}

type telemetryQueriesImpl struct {
	store      TelemetryReadStore
	thresholds alert.ThresholdSource
	clock      clock.Clock
}

func NewTelemetryQueries(store TelemetryReadStore, thresholds alert.ThresholdSource, clk clock.Clock) TelemetryQueries {
	return &telemetryQueriesImpl{
		store:      store,
		thresholds: thresholds,
		clock:      clk,
	}
}

func (q *telemetryQueriesImpl) Latest(ctx context.Context, deviceID string) (*ReadingView, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, ErrDeviceRequired
	}
	view, err := q.store.Latest(ctx, deviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReadingNotFound
		}
		return nil, err
	}

	set := q.thresholds.Get(ctx, deviceID)
	view.Statuses = make(map[string]string, len(view.Readings))
	for name, v := range view.Readings {
		p, err := threshold.NewParameter(name)
		if err != nil {
			continue
		}
		if r, ok := set.Range(p); ok {
			view.Statuses[name] = string(alert.Classify(v, r))
		}
	}
	return view, nil
}

func (q *telemetryQueriesImpl) Export(ctx context.Context, req ExportRequest) (*ExportReport, error) {
	if strings.TrimSpace(req.DeviceID) == "" {
		return nil, ErrDeviceRequired
	}
	hours := clampInt(req.Hours, DefaultExportHours, MaxExportHours)
	interval := clampInt(req.IntervalMinutes, DefaultExportInterval, MaxExportInterval)

	to := q.clock.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)

	buckets, err := q.store.Aggregate(ctx, req.DeviceID, from, int32(interval))
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, ErrNoExportData
	}
	alerts, err := q.store.AlertsSince(ctx, req.DeviceID, from)
	if err != nil {
		return nil, err
	}

	return &ExportReport{
		DeviceID:        req.DeviceID,
		Hours:           hours,
		IntervalMinutes: interval,
		From:            from,
		To:              to,
		Buckets:         buckets,
		Alerts:          alerts,
	}, nil
}

func clampInt(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
