package usecase

import (
	"context"
	"log/slog"
	"strings"

	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/apikey"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/shared"
)

// DeviceAuthenticator checks the x-api-key presented by a device.
type DeviceAuthenticator interface {
	// Authenticate returns the device the key belongs to. When deviceID is
	// non-empty the key must belong to that device.
	Authenticate(ctx context.Context, rawKey, deviceID string) (string, error)
}

type deviceAuthImpl struct {
	devices shared.DeviceRepository
	clock   clock.Clock
}

func NewDeviceAuthenticator(devices shared.DeviceRepository, clk clock.Clock) DeviceAuthenticator {
	return &deviceAuthImpl{
		devices: devices,
		clock:   clk,
	}
}

func (a *deviceAuthImpl) Authenticate(ctx context.Context, rawKey, deviceID string) (string, error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return "", errs.ErrAPIKeyRequired
	}
	prefix, err := apikey.Prefix(rawKey)
	if err != nil {
		return "", errs.ErrInvalidAPIKey
	}

	rec, err := a.devices.FindAPIKeyByPrefix(ctx, prefix)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.ErrInvalidAPIKey
		}
		return "", errs.Mark(err, errs.ErrAuthUnavailable)
	}

	now := a.clock.Now()
	if !rec.Usable(now) {
		return "", errs.ErrInvalidAPIKey
	}
	if err := apikey.Compare(rec.Hash, rawKey); err != nil {
		return "", errs.ErrInvalidAPIKey
	}
	if deviceID != "" && rec.DeviceID != deviceID {
		return "", errs.ErrInvalidAPIKey
	}

	if err := a.devices.TouchAPIKey(ctx, rec.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record api key use", "key_id", rec.ID, "error", err)
	}
	return rec.DeviceID, nil
}
