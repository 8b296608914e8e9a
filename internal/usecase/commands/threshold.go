package commands

import (
	"context"
	"log/slog"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaveThresholdsRequest struct {
	DeviceID   string
	CropID     *string
	Parameters map[string]threshold.Range
}

type ThresholdCommands interface {
	Save(ctx context.Context, req SaveThresholdsRequest, actorID uuid.UUID) (*threshold.Set, error)
}

type thresholdUseCaseImpl struct {
	repo  shared.ThresholdRepository
	cache ThresholdInvalidator
	clock clock.Clock
}

func NewThresholdUseCase(repo shared.ThresholdRepository, cache ThresholdInvalidator, clk clock.Clock) ThresholdCommands {
	return &thresholdUseCaseImpl{
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

// Save upserts the set and then drops every cached threshold so the next
// evaluation reads the new ranges.
func (uc *thresholdUseCaseImpl) Save(ctx context.Context, req SaveThresholdsRequest, actorID uuid.UUID) (*threshold.Set, error) {
	if len(req.Parameters) == 0 {
		return nil, threshold.ErrEmptyParameters
	}
	ranges := make(map[threshold.Parameter]threshold.Range, len(req.Parameters))
	for name, r := range req.Parameters {
		p, err := threshold.NewParameter(name)
		if err != nil {
			return nil, err
		}
		ranges[p] = r
	}

	set, err := threshold.NewSet(req.DeviceID, req.CropID, ranges, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, set, &actorID)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate()

	slog.InfoContext(ctx, "thresholds saved", "device_id", saved.DeviceID(), "parameters", len(ranges), "updated_by", actorID)
	return saved, nil
}
