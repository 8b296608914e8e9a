package commands

import (
	"context"
	"log/slog"
	"strings"

	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/shared"

	"github.com/google/uuid"
)

type AlertCommands interface {
	// Dismiss hides the alert for this user only. Dismissing twice is a no-op.
	Dismiss(ctx context.Context, alertID, userID uuid.UUID) error
	// DismissAll hides every alert for this user, optionally for one device.
	DismissAll(ctx context.Context, userID uuid.UUID, deviceID *string) (int64, error)
}

type alertUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAlertUseCase(uow shared.UnitOfWork, clk clock.Clock) AlertCommands {
	return &alertUseCaseImpl{uow: uow, clock: clk}
}

func (uc *alertUseCaseImpl) Dismiss(ctx context.Context, alertID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Alerts().FindByID(ctx, alertID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrAlertNotFound
			}
			return err
		}
		_, err := tx.Alerts().Dismiss(ctx, alertID, userID, uc.clock.Now())
		return err
	})
}

func (uc *alertUseCaseImpl) DismissAll(ctx context.Context, userID uuid.UUID, deviceID *string) (int64, error) {
	if deviceID != nil && strings.TrimSpace(*deviceID) == "" {
		deviceID = nil
	}
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		n, derr = tx.Alerts().DismissAll(ctx, userID, deviceID, uc.clock.Now())
		return derr
	})
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "alerts dismissed", "user_id", userID, "count", n)
	return n, nil
}
