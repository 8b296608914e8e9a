package readstore

import (
	"context"

	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"
	"hydro-command/internal/usecase/queries"
)

type CommandReadQueries interface {
	ListCommandHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommandHistoryParams) ([]sqlc.ListCommandHistoryRow, error)
}

type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) History(ctx context.Context, deviceID string, limit int32) ([]*queries.CommandView, error) {
	rows, err := r.queries.ListCommandHistory(ctx, r.db, sqlc.ListCommandHistoryParams{
		DeviceID: deviceID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list command history", err)
	}

	views := make([]*queries.CommandView, 0, len(rows))
	for _, row := range rows {
		params, err := pgconv.JSONObject(row.Parameters)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode command parameters", err, infra.KindDBFailure)
		}
		views = append(views, &queries.CommandView{
			ID:         row.ID,
			Seq:        row.Seq,
			DeviceID:   row.DeviceID,
			Action:     row.Action,
			Parameters: params,
			Priority:   row.Priority,
			Status:     row.Status,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
			SentAt:     pgconv.TimePtrFromPgtype(row.SentAt),
		})
	}
	return views, nil
}
