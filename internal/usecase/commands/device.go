package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/apikey"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDeviceExists      = errs.New("device already exists")
	ErrInvalidDeviceID   = errs.Mark(errs.New("device id must be non-empty and not \"all\""), errs.ErrDomainValidation)
	ErrKeyAlreadyExpired = errs.Mark(errs.New("api key expiry must be in the future"), errs.ErrDomainValidation)
)

type RegisterDeviceRequest struct {
	ID       string
	Name     string
	Location *string
}

type IssuedAPIKey struct {
	KeyID     uuid.UUID
	DeviceID  string
	Key       string
	Prefix    string
	ExpiresAt *time.Time
}

type DeviceCommands interface {
	Register(ctx context.Context, req RegisterDeviceRequest) (*shared.DeviceSnapshot, error)
	// IssueAPIKey returns the plaintext key once; only its bcrypt hash is stored.
	IssueAPIKey(ctx context.Context, deviceID string, expiresAt *time.Time) (*IssuedAPIKey, error)
}

type deviceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDeviceUseCase(uow shared.UnitOfWork, clk clock.Clock) DeviceCommands {
	return &deviceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *deviceUseCaseImpl) Register(ctx context.Context, req RegisterDeviceRequest) (*shared.DeviceSnapshot, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" || id == "all" {
		return nil, ErrInvalidDeviceID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = id
	}

	var created *shared.DeviceSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dev, derr := tx.Devices().Create(ctx, id, name, req.Location)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDeviceExists
			}
			return derr
		}
		created = dev
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "device registered", "device_id", created.ID)
	return created, nil
}

func (uc *deviceUseCaseImpl) IssueAPIKey(ctx context.Context, deviceID string, expiresAt *time.Time) (*IssuedAPIKey, error) {
	if expiresAt != nil && !expiresAt.After(uc.clock.Now()) {
		return nil, ErrKeyAlreadyExpired
	}

	key, err := apikey.Generate()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDeviceKeyGeneration)
	}

	var keyID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Devices().FindByID(ctx, deviceID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDeviceNotFound
			}
			return derr
		}
		id, derr := tx.Devices().CreateAPIKey(ctx, deviceID, key.Prefix, key.Hash, expiresAt)
		if derr != nil {
			return derr
		}
		keyID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "device api key issued", "device_id", deviceID, "key_id", keyID, "prefix", key.Prefix)
	return &IssuedAPIKey{
		KeyID:     keyID,
		DeviceID:  deviceID,
		Key:       key.Plaintext,
		Prefix:    key.Prefix,
		ExpiresAt: expiresAt,
	}, nil
}
