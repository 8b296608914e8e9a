package commands

import (
	"context"
	"log/slog"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/pkg/metrics"
	"hydro-command/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnqueueRequest struct {
	DeviceID   string
	Action     string
	Parameters map[string]any
	Priority   string
	TTL        *time.Duration
}

type EnqueueResult struct {
	CommandID uuid.UUID
	Seq       int64
	DeviceID  string
	Action    string
	Priority  command.Priority
	CreatedAt time.Time
	ExpiresAt time.Time
}

type CommandCommands interface {
	Enqueue(ctx context.Context, req EnqueueRequest) (*EnqueueResult, error)
	Claim(ctx context.Context, deviceID string) ([]*command.Command, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type commandUseCaseImpl struct {
	commands shared.CommandRepository
	devices  shared.DeviceRepository
	factory  *command.Factory
	clock    clock.Clock
}

func NewCommandUseCase(commands shared.CommandRepository, devices shared.DeviceRepository, factory *command.Factory, clk clock.Clock) CommandCommands {
	return &commandUseCaseImpl{
		commands: commands,
		devices:  devices,
		factory:  factory,
		clock:    clk,
	}
}

// Enqueue is fire-and-forget: a stored command is eventually claimed or
// expires. Store failures are returned so the operator can retry.
func (uc *commandUseCaseImpl) Enqueue(ctx context.Context, req EnqueueRequest) (*EnqueueResult, error) {
	cmd, err := uc.factory.NewPending(command.Draft{
		DeviceID:   req.DeviceID,
		Action:     req.Action,
		Parameters: req.Parameters,
		Priority:   req.Priority,
		TTL:        req.TTL,
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.devices.FindByID(ctx, cmd.DeviceID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDeviceNotFound
		}
		return nil, err
	}

	seq, err := uc.commands.Insert(ctx, cmd)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrDeviceNotFound
		}
		return nil, err
	}
	metrics.IncCommandEnqueued(cmd.Priority().String())

	slog.InfoContext(ctx, "command enqueued",
		"command_id", cmd.ID(),
		"device_id", cmd.DeviceID(),
		"action", cmd.Action(),
		"priority", cmd.Priority().String(),
		"expires_at", cmd.ExpiresAt())

	return &EnqueueResult{
		CommandID: cmd.ID(),
		Seq:       seq,
		DeviceID:  cmd.DeviceID(),
		Action:    cmd.Action(),
		Priority:  cmd.Priority(),
		CreatedAt: cmd.CreatedAt(),
		ExpiresAt: cmd.ExpiresAt(),
	}, nil
}

// Claim hands every claimable command to the polling device, in delivery
// order. Each command is returned by at most one Claim call.
func (uc *commandUseCaseImpl) Claim(ctx context.Context, deviceID string) ([]*command.Command, error) {
	start := time.Now()
	now := uc.clock.Now()

	cmds, err := uc.commands.Claim(ctx, deviceID, now)
	if err != nil {
		return nil, err
	}
	metrics.AddCommandsClaimed(len(cmds), time.Since(start))

	if err := uc.devices.TouchLastSeen(ctx, deviceID, now); err != nil {
		slog.WarnContext(ctx, "failed to record device poll", "device_id", deviceID, "error", err)
	}
	return cmds, nil
}

func (uc *commandUseCaseImpl) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := uc.commands.ExpireOverdue(ctx, uc.clock.Now())
	if err != nil {
		return 0, err
	}
	metrics.AddCommandsExpired(n)
	return n, nil
}
