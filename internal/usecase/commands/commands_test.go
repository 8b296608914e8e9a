//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/command"
	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	"hydro-command/internal/infra/cooldown"
	"hydro-command/internal/pkg/apikey"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/shared"
	commandsmock "hydro-command/tests/mock/commands"
	sharedmock "hydro-command/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func fkViolation() error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23503"})
}

// txFixture wires a mocked unit of work whose Within runs fn against tx.
type txFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	devices   *sharedmock.MockDeviceRepository
	alerts    *sharedmock.MockAlertRepository
	telemetry *sharedmock.MockTelemetryRepository
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		devices:   sharedmock.NewMockDeviceRepository(ctrl),
		alerts:    sharedmock.NewMockAlertRepository(ctrl),
		telemetry: sharedmock.NewMockTelemetryRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Devices().Return(f.devices).AnyTimes()
	f.tx.EXPECT().Alerts().Return(f.alerts).AnyTimes()
	f.tx.EXPECT().Telemetry().Return(f.telemetry).AnyTimes()
	return f
}

func validReadings() map[threshold.Parameter]float64 {
	return map[threshold.Parameter]float64{
		threshold.Temperature:       26,
		threshold.PH:                6.0,
		threshold.EC:                2.0,
		threshold.SubstrateMoisture: 70,
		threshold.Humidity:          72,
	}
}

func TestCommandUseCase_Enqueue(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)

	t.Run("success: stored with default ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
		devRepo := sharedmock.NewMockDeviceRepository(ctrl)

		devRepo.EXPECT().FindByID(ctx, "bag-1").Return(&shared.DeviceSnapshot{ID: "bag-1"}, nil)
		cmdRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *command.Command) (int64, error) {
			assert.Equal(t, "pump_on", c.Action())
			assert.Equal(t, command.PriorityNormal, c.Priority())
			return 42, nil
		})

		uc := commands.NewCommandUseCase(cmdRepo, devRepo, command.NewFactory(clk, 0), clk)
		res, err := uc.Enqueue(ctx, commands.EnqueueRequest{DeviceID: "bag-1", Action: "pump_on"})

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Seq)
		assert.Equal(t, now.Add(command.DefaultTTL), res.ExpiresAt)
	})

	t.Run("success: emergency stop forced high", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
		devRepo := sharedmock.NewMockDeviceRepository(ctrl)
		devRepo.EXPECT().FindByID(ctx, "bag-1").Return(&shared.DeviceSnapshot{ID: "bag-1"}, nil)
		cmdRepo.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)

		uc := commands.NewCommandUseCase(cmdRepo, devRepo, command.NewFactory(clk, 0), clk)
		res, err := uc.Enqueue(ctx, commands.EnqueueRequest{DeviceID: "bag-1", Action: "emergency_stop", Priority: "normal"})

		require.NoError(t, err)
		assert.Equal(t, command.PriorityHigh, res.Priority)
	})

	t.Run("error: unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		devRepo := sharedmock.NewMockDeviceRepository(ctrl)
		devRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, notFound())

		uc := commands.NewCommandUseCase(sharedmock.NewMockCommandRepository(ctrl), devRepo, command.NewFactory(clk, 0), clk)
		_, err := uc.Enqueue(ctx, commands.EnqueueRequest{DeviceID: "ghost", Action: "pump_on"})

		assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	})

	t.Run("error: device deleted between lookup and insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
		devRepo := sharedmock.NewMockDeviceRepository(ctrl)
		devRepo.EXPECT().FindByID(ctx, "bag-1").Return(&shared.DeviceSnapshot{ID: "bag-1"}, nil)
		cmdRepo.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), fkViolation())

		uc := commands.NewCommandUseCase(cmdRepo, devRepo, command.NewFactory(clk, 0), clk)
		_, err := uc.Enqueue(ctx, commands.EnqueueRequest{DeviceID: "bag-1", Action: "pump_on"})

		assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	})

	t.Run("error: validation happens before any lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := commands.NewCommandUseCase(sharedmock.NewMockCommandRepository(ctrl), sharedmock.NewMockDeviceRepository(ctrl), command.NewFactory(clk, 0), clk)

		_, err := uc.Enqueue(ctx, commands.EnqueueRequest{DeviceID: "bag-1", Action: "pump_on", Priority: "urgent"})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestCommandUseCase_Claim(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)

	t.Run("success: touch failure does not lose claimed commands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
		devRepo := sharedmock.NewMockDeviceRepository(ctrl)

		factory := command.NewFactory(clk, 0)
		c, err := factory.NewPending(command.Draft{DeviceID: "bag-1", Action: "pump_on"})
		require.NoError(t, err)

		cmdRepo.EXPECT().Claim(ctx, "bag-1", now).Return([]*command.Command{c}, nil)
		devRepo.EXPECT().TouchLastSeen(ctx, "bag-1", now).Return(errors.New("boom"))

		uc := commands.NewCommandUseCase(cmdRepo, devRepo, factory, clk)
		got, err := uc.Claim(ctx, "bag-1")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
		cmdRepo.EXPECT().Claim(ctx, "bag-1", now).Return(nil, errors.New("db down"))

		uc := commands.NewCommandUseCase(cmdRepo, sharedmock.NewMockDeviceRepository(ctrl), command.NewFactory(clk, 0), clk)
		_, err := uc.Claim(ctx, "bag-1")
		assert.Error(t, err)
	})
}

func TestCommandUseCase_ExpireOverdue(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)
	ctrl := gomock.NewController(t)
	cmdRepo := sharedmock.NewMockCommandRepository(ctrl)
	cmdRepo.EXPECT().ExpireOverdue(ctx, now).Return(int64(3), nil)

	uc := commands.NewCommandUseCase(cmdRepo, sharedmock.NewMockDeviceRepository(ctrl), command.NewFactory(clk, 0), clk)
	n, err := uc.ExpireOverdue(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestThresholdUseCase_Save(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)
	actor := uuid.New()

	t.Run("success: saved then cache invalidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockThresholdRepository(ctrl)
		cache := commandsmock.NewMockThresholdInvalidator(ctrl)

		gomock.InOrder(
			repo.EXPECT().Save(ctx, gomock.Any(), &actor).DoAndReturn(func(_ context.Context, s *threshold.Set, _ *uuid.UUID) (*threshold.Set, error) {
				assert.Equal(t, "bag-1", s.DeviceID())
				assert.Equal(t, now, s.UpdatedAt())
				return s, nil
			}),
			cache.EXPECT().Invalidate(),
		)

		uc := commands.NewThresholdUseCase(repo, cache, clk)
		set, err := uc.Save(ctx, commands.SaveThresholdsRequest{
			DeviceID:   "bag-1",
			Parameters: map[string]threshold.Range{"pH": {Min: 5.5, Max: 6.5}},
		}, actor)

		require.NoError(t, err)
		r, ok := set.Range(threshold.PH)
		require.True(t, ok)
		assert.Equal(t, 5.5, r.Min)
	})

	t.Run("success: empty device saves the fleet default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockThresholdRepository(ctrl)
		cache := commandsmock.NewMockThresholdInvalidator(ctrl)
		repo.EXPECT().Save(ctx, gomock.Any(), &actor).DoAndReturn(func(_ context.Context, s *threshold.Set, _ *uuid.UUID) (*threshold.Set, error) {
			return s, nil
		})
		cache.EXPECT().Invalidate()

		uc := commands.NewThresholdUseCase(repo, cache, clk)
		set, err := uc.Save(ctx, commands.SaveThresholdsRequest{
			Parameters: map[string]threshold.Range{"ec": {Min: 1.2, Max: 2.4}},
		}, actor)

		require.NoError(t, err)
		assert.True(t, set.IsFleetDefault())
	})

	t.Run("error: no cache invalidation when save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockThresholdRepository(ctrl)
		repo.EXPECT().Save(ctx, gomock.Any(), &actor).Return(nil, errors.New("db down"))

		uc := commands.NewThresholdUseCase(repo, commandsmock.NewMockThresholdInvalidator(ctrl), clk)
		_, err := uc.Save(ctx, commands.SaveThresholdsRequest{
			DeviceID:   "bag-1",
			Parameters: map[string]threshold.Range{"pH": {Min: 5.5, Max: 6.5}},
		}, actor)
		assert.Error(t, err)
	})

	testCases := []struct {
		name   string
		params map[string]threshold.Range
	}{
		{name: "empty parameters", params: map[string]threshold.Range{}},
		{name: "unknown parameter", params: map[string]threshold.Range{"salinity": {Min: 1, Max: 2}}},
		{name: "inverted range", params: map[string]threshold.Range{"pH": {Min: 7, Max: 6}}},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := commands.NewThresholdUseCase(sharedmock.NewMockThresholdRepository(ctrl), commandsmock.NewMockThresholdInvalidator(ctrl), clk)
			_, err := uc.Save(ctx, commands.SaveThresholdsRequest{DeviceID: "bag-1", Parameters: tc.params}, actor)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)
		})
	}
}

func TestTelemetryUseCase_Ingest(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)

	t.Run("success: reading and alerts stored, then notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		evaluator := commandsmock.NewMockAlertEvaluator(ctrl)
		notifier := commandsmock.NewMockAlertNotifier(ctrl)

		rec, err := alert.Reconstruct(uuid.New(), "bag-1", "pH", "pH out of range", alert.SeverityAlert, now)
		require.NoError(t, err)

		evaluator.EXPECT().Evaluate(ctx, gomock.Any()).Return([]*alert.Record{rec})
		f.telemetry.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s telemetry.Sample) (int64, error) {
			assert.Equal(t, now, s.Timestamp)
			return 7, nil
		})
		f.alerts.EXPECT().Insert(ctx, rec, gomock.Any()).DoAndReturn(func(_ context.Context, _ *alert.Record, readingID *int64) error {
			require.NotNil(t, readingID)
			assert.Equal(t, int64(7), *readingID)
			return nil
		})
		f.devices.EXPECT().TouchLastSeen(ctx, "bag-1", now).Return(nil)
		notifier.EXPECT().NotifyAlerts(ctx, []*alert.Record{rec}).Return(errors.New("nats down"))

		uc := commands.NewTelemetryUseCase(f.uow, evaluator, notifier, clk)
		res, err := uc.Ingest(ctx, commands.IngestRequest{DeviceID: "bag-1", Readings: validReadings()})

		require.NoError(t, err)
		assert.Equal(t, int64(7), res.ReadingID)
		assert.Len(t, res.Alerts, 1)
	})

	t.Run("success: explicit timestamp kept, no alerts skips notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		evaluator := commandsmock.NewMockAlertEvaluator(ctrl)
		ts := now.Add(-time.Minute)

		evaluator.EXPECT().Evaluate(ctx, gomock.Any()).Return(nil)
		f.telemetry.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)
		f.devices.EXPECT().TouchLastSeen(ctx, "bag-1", now).Return(nil)

		uc := commands.NewTelemetryUseCase(f.uow, evaluator, commandsmock.NewMockAlertNotifier(ctrl), clk)
		res, err := uc.Ingest(ctx, commands.IngestRequest{DeviceID: "bag-1", Timestamp: &ts, Readings: validReadings()})

		require.NoError(t, err)
		assert.Equal(t, ts, res.Timestamp)
		assert.Empty(t, res.Alerts)
	})

	t.Run("error: invalid sample never evaluated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := commands.NewTelemetryUseCase(sharedmock.NewMockUnitOfWork(ctrl), commandsmock.NewMockAlertEvaluator(ctrl), commandsmock.NewMockAlertNotifier(ctrl), clk)

		readings := validReadings()
		delete(readings, threshold.PH)
		_, err := uc.Ingest(ctx, commands.IngestRequest{DeviceID: "bag-1", Readings: readings})

		assert.ErrorIs(t, err, telemetry.ErrMissingReading)
	})

	t.Run("error: persistence failure skips notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		evaluator := commandsmock.NewMockAlertEvaluator(ctrl)
		evaluator.EXPECT().Evaluate(ctx, gomock.Any()).Return(nil)
		f.telemetry.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), fkViolation())

		uc := commands.NewTelemetryUseCase(f.uow, evaluator, commandsmock.NewMockAlertNotifier(ctrl), clk)
		_, err := uc.Ingest(ctx, commands.IngestRequest{DeviceID: "bag-1", Readings: validReadings()})

		assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	})

	t.Run("failed transaction gives the cooldown window back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		clk := clock.NewMockClock(now)
		evaluator := alert.NewEvaluator(staticThresholds{}, cooldown.NewMemory(clk), alert.PolicyBinaryOnly, time.Minute)
		notifier := commandsmock.NewMockAlertNotifier(ctrl)

		f.telemetry.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), errors.New("conn reset"))
		f.telemetry.EXPECT().Insert(ctx, gomock.Any()).Return(int64(9), nil)
		var stored []*alert.Record
		f.alerts.EXPECT().Insert(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *alert.Record, _ *int64) error {
			stored = append(stored, rec)
			return nil
		})
		f.devices.EXPECT().TouchLastSeen(ctx, "bag-1", gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyAlerts(ctx, gomock.Any()).Return(nil)

		uc := commands.NewTelemetryUseCase(f.uow, evaluator, notifier, clk)
		req := commands.IngestRequest{DeviceID: "bag-1", Readings: validReadings(), WaterLevel: string(telemetry.WaterLevelLow)}

		_, err := uc.Ingest(ctx, req)
		require.Error(t, err)

		clk.Add(5 * time.Second)
		res, err := uc.Ingest(ctx, req)
		require.NoError(t, err)
		require.Len(t, res.Alerts, 1)
		require.Len(t, stored, 1)
		assert.Equal(t, alert.SeverityError, stored[0].Severity())
		assert.Equal(t, string(alert.ConditionWaterLevel), stored[0].Parameter())
	})
}

// staticThresholds serves the built-in ranges.
type staticThresholds struct{}

func (staticThresholds) Get(context.Context, string) *threshold.Set {
	return threshold.MustDefaults()
}

func TestAlertUseCase_Dismiss(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)
	alertID, userID := uuid.New(), uuid.New()

	t.Run("success: repeated dismiss is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		rec, _ := alert.Reconstruct(alertID, "bag-1", "pH", "msg", alert.SeverityAlert, now)
		f.alerts.EXPECT().FindByID(ctx, alertID).Return(rec, nil)
		f.alerts.EXPECT().Dismiss(ctx, alertID, userID, now).Return(false, nil)

		uc := commands.NewAlertUseCase(f.uow, clk)
		assert.NoError(t, uc.Dismiss(ctx, alertID, userID))
	})

	t.Run("error: unknown alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.alerts.EXPECT().FindByID(ctx, alertID).Return(nil, notFound())

		uc := commands.NewAlertUseCase(f.uow, clk)
		assert.ErrorIs(t, uc.Dismiss(ctx, alertID, userID), errs.ErrAlertNotFound)
	})
}

func TestAlertUseCase_DismissAll(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)
	userID := uuid.New()

	t.Run("success: blank device means every device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.alerts.EXPECT().DismissAll(ctx, userID, nil, now).Return(int64(4), nil)

		blank := " "
		n, err := commands.NewAlertUseCase(f.uow, clk).DismissAll(ctx, userID, &blank)

		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("success: scoped to one device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		device := "bag-1"
		f.alerts.EXPECT().DismissAll(ctx, userID, &device, now).Return(int64(1), nil)

		n, err := commands.NewAlertUseCase(f.uow, clk).DismissAll(ctx, userID, &device)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestDeviceUseCase_Register(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)

	t.Run("success: name defaults to id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.devices.EXPECT().Create(ctx, "bag-1", "bag-1", nil).Return(&shared.DeviceSnapshot{ID: "bag-1", Name: "bag-1"}, nil)

		uc := commands.NewDeviceUseCase(f.uow, clk)
		dev, err := uc.Register(ctx, commands.RegisterDeviceRequest{ID: " bag-1 "})

		require.NoError(t, err)
		assert.Equal(t, "bag-1", dev.Name)
	})

	t.Run("error: duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.devices.EXPECT().Create(ctx, "bag-1", "Bag", nil).Return(nil, infra.WrapRepoErr("dup", &pgconn.PgError{Code: "23505"}))

		uc := commands.NewDeviceUseCase(f.uow, clk)
		_, err := uc.Register(ctx, commands.RegisterDeviceRequest{ID: "bag-1", Name: "Bag"})

		assert.ErrorIs(t, err, commands.ErrDeviceExists)
	})

	t.Run("error: reserved id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := commands.NewDeviceUseCase(sharedmock.NewMockUnitOfWork(ctrl), clk)
		_, err := uc.Register(ctx, commands.RegisterDeviceRequest{ID: "all"})
		assert.ErrorIs(t, err, commands.ErrInvalidDeviceID)
	})
}

func TestDeviceUseCase_IssueAPIKey(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)

	t.Run("success: plaintext returned once, hash stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		keyID := uuid.New()
		var storedHash, storedPrefix string

		f.devices.EXPECT().FindByID(ctx, "bag-1").Return(&shared.DeviceSnapshot{ID: "bag-1"}, nil)
		f.devices.EXPECT().CreateAPIKey(ctx, "bag-1", gomock.Any(), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, _ string, prefix, hash string, _ *time.Time) (uuid.UUID, error) {
				storedPrefix, storedHash = prefix, hash
				return keyID, nil
			})

		uc := commands.NewDeviceUseCase(f.uow, clk)
		issued, err := uc.IssueAPIKey(ctx, "bag-1", nil)

		require.NoError(t, err)
		assert.Equal(t, keyID, issued.KeyID)
		assert.Equal(t, storedPrefix, issued.Prefix)
		assert.NotEqual(t, issued.Key, storedHash)
		assert.NoError(t, apikey.Compare(storedHash, issued.Key))
	})

	t.Run("error: expiry in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		past := now.Add(-time.Hour)
		uc := commands.NewDeviceUseCase(sharedmock.NewMockUnitOfWork(ctrl), clk)
		_, err := uc.IssueAPIKey(ctx, "bag-1", &past)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.devices.EXPECT().FindByID(ctx, "ghost").Return(nil, notFound())

		uc := commands.NewDeviceUseCase(f.uow, clk)
		_, err := uc.IssueAPIKey(ctx, "ghost", nil)
		assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	})
}
