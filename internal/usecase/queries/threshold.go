package queries

import (
	"context"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
)

type ThresholdReader interface {
	FindForDevice(ctx context.Context, deviceID string, cropID *string) (*threshold.Set, error)
}

type ThresholdQueries interface {
	Get(ctx context.Context, deviceID string, cropID *string) (*ThresholdView, error)
}

type thresholdQueriesImpl struct {
	reader   ThresholdReader
	defaults *threshold.Set
}

func NewThresholdQueries(reader ThresholdReader, defaults *threshold.Set) ThresholdQueries {
	return &thresholdQueriesImpl{
		reader:   reader,
		defaults: defaults,
	}
}

// Get returns the stored set for the device (or the fleet row) with missing
// parameters filled from defaults. Without any stored row it returns the
// defaults flagged IsDefault.
func (q *thresholdQueriesImpl) Get(ctx context.Context, deviceID string, cropID *string) (*ThresholdView, error) {
	if deviceID == "" {
		deviceID = threshold.AllDevices
	}
	set, err := q.reader.FindForDevice(ctx, deviceID, cropID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			view := toThresholdView(q.defaults.ForDevice(deviceID))
			view.CropID = cropID
			view.IsDefault = true
			view.UpdatedAt = nil
			return view, nil
		}
		return nil, err
	}
	return toThresholdView(set.WithDefaults(q.defaults)), nil
}

func toThresholdView(set *threshold.Set) *ThresholdView {
	params := make(map[string]ThresholdRange, len(threshold.Parameters))
	for _, p := range threshold.Parameters {
		r, ok := set.Range(p)
		if !ok {
			continue
		}
		params[p.String()] = ThresholdRange{Min: r.Min, Max: r.Max, Unit: p.Unit()}
	}
	updated := set.UpdatedAt()
	return &ThresholdView{
		DeviceID:   set.DeviceID(),
		CropID:     set.CropID(),
		Parameters: params,
		UpdatedAt:  &updated,
	}
}
