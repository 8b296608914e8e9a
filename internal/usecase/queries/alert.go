package queries

import (
	"context"

	"github.com/google/uuid"
)

type AlertReadStore interface {
	Recent(ctx context.Context, userID uuid.UUID, deviceID *string, limit int32) ([]*AlertView, error)
}

type AlertQueries interface {
	Recent(ctx context.Context, userID uuid.UUID, deviceID *string, limit int) ([]*AlertView, error)
}

type alertQueriesImpl struct {
	store AlertReadStore
}

func NewAlertQueries(store AlertReadStore) AlertQueries {
	return &alertQueriesImpl{store: store}
}

// Recent returns the newest alert and error records the user has not dismissed.
func (q *alertQueriesImpl) Recent(ctx context.Context, userID uuid.UUID, deviceID *string, limit int) ([]*AlertView, error) {
	if deviceID != nil && *deviceID == "" {
		deviceID = nil
	}
	return q.store.Recent(ctx, userID, deviceID, int32(ValidateLimit(limit)))
}
