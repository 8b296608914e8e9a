package queries

import (
	"context"
	"time"
)

type DeviceView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   *string    `json:"location,omitempty"`
	IsActive   bool       `json:"is_active"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type DeviceReadStore interface {
	List(ctx context.Context) ([]*DeviceView, error)
}

type DeviceQueries interface {
	List(ctx context.Context) ([]*DeviceView, error)
}

type deviceQueriesImpl struct {
	store DeviceReadStore
}

func NewDeviceQueries(store DeviceReadStore) DeviceQueries {
	return &deviceQueriesImpl{store: store}
}

func (q *deviceQueriesImpl) List(ctx context.Context) ([]*DeviceView, error) {
	return q.store.List(ctx)
}
