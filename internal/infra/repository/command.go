package repository

import (
	"context"
	"encoding/json"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type CommandQueries interface {
	InsertCommand(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCommandParams) (int64, error)
	ClaimPendingCommands(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingCommandsParams) ([]sqlc.ClaimPendingCommandsRow, error)
	ExpirePendingCommands(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type CommandRepository struct {
	queries CommandQueries
	db      sqlc.DBTX
}

func NewCommandRepository(queries CommandQueries, db sqlc.DBTX) *CommandRepository {
	return &CommandRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommandRepository) Insert(ctx context.Context, cmd *command.Command) (int64, error) {
	params, err := json.Marshal(cmd.Parameters())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode command parameters", err, infra.KindDBFailure)
	}

	seq, err := r.queries.InsertCommand(ctx, r.db, sqlc.InsertCommandParams{
		ID:         cmd.ID(),
		DeviceID:   cmd.DeviceID(),
		Action:     cmd.Action(),
		Parameters: params,
		Priority:   cmd.Priority().String(),
		CreatedAt:  pgconv.TimeToPgtype(cmd.CreatedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(cmd.ExpiresAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert command", err)
	}
	return seq, nil
}

// Claim runs a single conditional UPDATE; rows locked by a concurrent claim
// are skipped, so no command is ever returned to two pollers.
func (r *CommandRepository) Claim(ctx context.Context, deviceID string, now time.Time) ([]*command.Command, error) {
	rows, err := r.queries.ClaimPendingCommands(ctx, r.db, sqlc.ClaimPendingCommandsParams{
		Now:      pgconv.TimeToPgtype(now),
		DeviceID: deviceID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim commands", err)
	}

	cmds := make([]*command.Command, 0, len(rows))
	for _, row := range rows {
		cmd, err := claimedRowToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode claimed command", err, infra.KindDBFailure)
		}
		cmds = append(cmds, cmd)
	}

	// RETURNING does not preserve the subquery order
	command.SortForDelivery(cmds)
	return cmds, nil
}

func (r *CommandRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpirePendingCommands(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire commands", err)
	}
	return n, nil
}

func claimedRowToDomain(row sqlc.ClaimPendingCommandsRow) (*command.Command, error) {
	params, err := pgconv.JSONObject(row.Parameters)
	if err != nil {
		return nil, err
	}
	return command.Reconstruct(
		row.ID,
		row.Seq,
		row.DeviceID,
		row.Action,
		params,
		command.Priority(row.Priority),
		command.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.SentAt),
	)
}
