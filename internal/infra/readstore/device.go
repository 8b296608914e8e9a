package readstore

import (
	"context"

	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"
	"hydro-command/internal/usecase/queries"
)

type DeviceReadQueries interface {
	ListDevices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Devices, error)
}

type DeviceReadStore struct {
	queries DeviceReadQueries
	db      sqlc.DBTX
}

func NewDeviceReadStore(queries DeviceReadQueries, db sqlc.DBTX) *DeviceReadStore {
	return &DeviceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DeviceReadStore) List(ctx context.Context) ([]*queries.DeviceView, error) {
	rows, err := r.queries.ListDevices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list devices", err)
	}
	views := make([]*queries.DeviceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.DeviceView{
			ID:         row.ID,
			Name:       row.Name,
			Location:   pgconv.StringPtrFromPgtype(row.Location),
			IsActive:   row.IsActive,
			LastSeenAt: pgconv.TimePtrFromPgtype(row.LastSeenAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
