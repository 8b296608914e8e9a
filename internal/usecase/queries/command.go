package queries

import (
	"context"
	"strings"

	"hydro-command/internal/pkg/errs"
)

var ErrDeviceRequired = errs.Mark(errs.New("device id is required"), errs.ErrDomainValidation)

type CommandReadStore interface {
	History(ctx context.Context, deviceID string, limit int32) ([]*CommandView, error)
}

type CommandQueries interface {
	History(ctx context.Context, deviceID string, limit int) ([]*CommandView, error)
}

type commandQueriesImpl struct {
	store CommandReadStore
}

func NewCommandQueries(store CommandReadStore) CommandQueries {
	return &commandQueriesImpl{store: store}
}

// History lists the device's commands newest first regardless of status.
func (q *commandQueriesImpl) History(ctx context.Context, deviceID string, limit int) ([]*CommandView, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, ErrDeviceRequired
	}
	return q.store.History(ctx, deviceID, int32(ValidateLimit(limit)))
}
