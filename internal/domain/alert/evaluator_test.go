//go:build unit

package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	alertmock "hydro-command/tests/mock/alert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticThresholds struct {
	set *threshold.Set
}

func (s *staticThresholds) Get(context.Context, string) *threshold.Set {
	return s.set
}

// windowCooldown grants a key once until release is called.
type windowCooldown struct {
	held map[string]bool
}

func newWindowCooldown() *windowCooldown {
	return &windowCooldown{held: map[string]bool{}}
}

func (c *windowCooldown) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if c.held[key] {
		return false, nil
	}
	c.held[key] = true
	return true, nil
}

func (c *windowCooldown) Release(_ context.Context, key string) error {
	delete(c.held, key)
	return nil
}

func (c *windowCooldown) release() {
	c.held = map[string]bool{}
}

var sampleTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func phOnly(t *testing.T) *threshold.Set {
	t.Helper()
	set, err := threshold.NewSet("bag-1", nil, map[threshold.Parameter]threshold.Range{
		threshold.PH: {Min: 5.5, Max: 6.5},
	}, sampleTime)
	require.NoError(t, err)
	return set
}

func sample(readings map[threshold.Parameter]float64, water telemetry.WaterLevel) telemetry.Sample {
	if water == "" {
		water = telemetry.WaterLevelAdequate
	}
	return telemetry.Sample{DeviceID: "bag-1", Timestamp: sampleTime, Readings: readings, WaterLevel: water}
}

func TestEvaluator_NumericBands(t *testing.T) {
	ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, newWindowCooldown(), alert.PolicyBinaryOnly, time.Minute)
	ctx := context.Background()

	t.Run("pH 10.6 breaches the alert band", func(t *testing.T) {
		records := ev.Evaluate(ctx, sample(map[threshold.Parameter]float64{threshold.PH: 10.6}, ""))
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, alert.SeverityAlert, rec.Severity())
		assert.Equal(t, "pH alert: 10.6 (Range: 5.5-6.5)", rec.Message())
		assert.Equal(t, "pH", rec.Parameter())
		assert.Equal(t, "bag-1", rec.DeviceID())
		assert.Equal(t, sampleTime, rec.Timestamp())
	})

	testCases := []struct {
		name string
		v    float64
		want int
	}{
		{name: "pH 7.2 is warning only", v: 7.2, want: 0},
		{name: "pH 9.6 is past the warning band but inside max+4", v: 9.6, want: 0},
		{name: "pH 6.0 is good", v: 6.0, want: 0},
		{name: "exactly max+4 is not a breach", v: 10.5, want: 0},
		{name: "just above max+4", v: 10.51, want: 1},
		{name: "exactly min-4 is not a breach", v: 1.5, want: 0},
		{name: "below min-4", v: 1.4, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := ev.Evaluate(ctx, sample(map[threshold.Parameter]float64{threshold.PH: tc.v}, ""))
			assert.Len(t, records, tc.want)
		})
	}

	t.Run("numeric breaches repeat under binary_only", func(t *testing.T) {
		s := sample(map[threshold.Parameter]float64{threshold.PH: 12}, "")
		assert.Len(t, ev.Evaluate(ctx, s), 1)
		assert.Len(t, ev.Evaluate(ctx, s), 1)
	})

	t.Run("units are rendered", func(t *testing.T) {
		tempEv := alert.NewEvaluator(&staticThresholds{set: threshold.MustDefaults()}, newWindowCooldown(), alert.PolicyBinaryOnly, time.Minute)
		records := tempEv.Evaluate(ctx, sample(map[threshold.Parameter]float64{threshold.Temperature: 35}, ""))
		require.Len(t, records, 1)
		assert.Equal(t, "Temperature alert: 35°C (Range: 24-30°C)", records[0].Message())
	})
}

func TestEvaluator_WaterLevelCooldown(t *testing.T) {
	ctx := context.Background()
	cd := newWindowCooldown()
	ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, cd, alert.PolicyBinaryOnly, time.Minute)
	low := sample(map[threshold.Parameter]float64{threshold.PH: 6}, telemetry.WaterLevelLow)

	first := ev.Evaluate(ctx, low)
	require.Len(t, first, 1)
	assert.Equal(t, alert.SeverityError, first[0].Severity())
	assert.Equal(t, string(alert.ConditionWaterLevel), first[0].Parameter())

	assert.Empty(t, ev.Evaluate(ctx, low), "suppressed inside the window")

	cd.release()
	assert.Len(t, ev.Evaluate(ctx, low), 1, "emitted again once the window has passed")
}

func TestEvaluator_UniformPolicy(t *testing.T) {
	ctx := context.Background()
	ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, newWindowCooldown(), alert.PolicyUniform, time.Minute)
	s := sample(map[threshold.Parameter]float64{threshold.PH: 12}, "")

	assert.Len(t, ev.Evaluate(ctx, s), 1)
	assert.Empty(t, ev.Evaluate(ctx, s))
}

func TestEvaluator_Release(t *testing.T) {
	ctx := context.Background()
	breach := sample(map[threshold.Parameter]float64{threshold.PH: 12}, telemetry.WaterLevelLow)

	t.Run("binary_only reopens the water level window only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cd := alertmock.NewMockCooldown(ctrl)
		cd.EXPECT().Acquire(gomock.Any(), "bag-1:water_level", time.Minute).Return(true, nil)
		cd.EXPECT().Release(gomock.Any(), "bag-1:water_level").Return(nil)

		ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, cd, alert.PolicyBinaryOnly, time.Minute)
		records := ev.Evaluate(ctx, breach)
		require.Len(t, records, 2)

		ev.Release(ctx, records)
	})

	t.Run("uniform reopens every condition", func(t *testing.T) {
		cd := newWindowCooldown()
		ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, cd, alert.PolicyUniform, time.Minute)

		records := ev.Evaluate(ctx, breach)
		require.Len(t, records, 2)
		assert.Empty(t, ev.Evaluate(ctx, breach))

		ev.Release(ctx, records)
		assert.Len(t, ev.Evaluate(ctx, breach), 2)
	})

	t.Run("release failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cd := alertmock.NewMockCooldown(ctrl)
		cd.EXPECT().Acquire(gomock.Any(), "bag-1:water_level", time.Minute).Return(true, nil)
		cd.EXPECT().Release(gomock.Any(), "bag-1:water_level").Return(errors.New("redis: connection refused"))

		ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, cd, alert.PolicyBinaryOnly, time.Minute)
		assert.NotPanics(t, func() {
			ev.Release(ctx, ev.Evaluate(ctx, sample(map[threshold.Parameter]float64{threshold.PH: 6}, telemetry.WaterLevelLow)))
		})
	})
}

func TestEvaluator_CooldownFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	cd := alertmock.NewMockCooldown(ctrl)
	cd.EXPECT().
		Acquire(gomock.Any(), "bag-1:water_level", time.Minute).
		Return(false, errors.New("redis: connection refused"))

	ev := alert.NewEvaluator(&staticThresholds{set: phOnly(t)}, cd, alert.PolicyBinaryOnly, time.Minute)
	records := ev.Evaluate(context.Background(), sample(map[threshold.Parameter]float64{threshold.PH: 6}, telemetry.WaterLevelLow))

	assert.Len(t, records, 1)
}

func TestClassify(t *testing.T) {
	r := threshold.Range{Min: 5.5, Max: 6.5}

	assert.Equal(t, alert.Good, alert.Classify(6.0, r))
	assert.Equal(t, alert.Good, alert.Classify(6.5, r))
	assert.Equal(t, alert.Warning, alert.Classify(7.2, r))
	assert.Equal(t, alert.Warning, alert.Classify(3.5, r))
	assert.Equal(t, alert.Alert, alert.Classify(9.6, r))
	assert.Equal(t, alert.Alert, alert.Classify(9.0, r))
	assert.False(t, alert.Breaches(9.0, r), "classified alert but inside the emission band")
}
