//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/infra"
	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommandQueries struct {
	mock.Mock
}

func (m *MockCommandQueries) InsertCommand(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCommandParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommandQueries) ClaimPendingCommands(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingCommandsParams) ([]sqlc.ClaimPendingCommandsRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ClaimPendingCommandsRow)
	return rows, args.Error(1)
}

func (m *MockCommandQueries) ExpirePendingCommands(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).(int64), args.Error(1)
}

var repoNow = time.Date(2025, 6, 1, 9, 0, 1, 0, time.UTC)

func claimedRow(seq int64, action, priority string, created time.Time) sqlc.ClaimPendingCommandsRow {
	return sqlc.ClaimPendingCommandsRow{
		ID:         uuid.New(),
		Seq:        seq,
		DeviceID:   "bag-1",
		Action:     action,
		Parameters: []byte(`{"duration_ms":30000}`),
		Priority:   priority,
		Status:     "sent",
		CreatedAt:  pgconv.TimeToPgtype(created),
		ExpiresAt:  pgconv.TimeToPgtype(created.Add(5 * time.Minute)),
		SentAt:     pgconv.TimeToPgtype(repoNow),
	}
}

func TestCommandRepository_Claim(t *testing.T) {
	ctx := context.Background()
	created := repoNow.Add(-time.Second)

	t.Run("success: rows come back in delivery order", func(t *testing.T) {
		q := new(MockCommandQueries)
		q.On("ClaimPendingCommands", mock.Anything, mock.Anything, sqlc.ClaimPendingCommandsParams{
			Now:      pgconv.TimeToPgtype(repoNow),
			DeviceID: "bag-1",
		}).Return([]sqlc.ClaimPendingCommandsRow{
			claimedRow(2, "nutrient_pump_on", "normal", created),
			claimedRow(3, "restart", "normal", created),
			claimedRow(1, "relay2_on", "high", created),
		}, nil)

		repo := NewCommandRepository(q, nil)
		cmds, err := repo.Claim(ctx, "bag-1", repoNow)
		require.NoError(t, err)

		got := make([]string, 0, len(cmds))
		for _, c := range cmds {
			got = append(got, c.Action())
			assert.Equal(t, command.StatusSent, c.Status())
			require.NotNil(t, c.SentAt())
		}
		if diff := cmp.Diff([]string{"relay2_on", "nutrient_pump_on", "restart"}, got); diff != "" {
			t.Errorf("claim order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, float64(30000), cmds[0].Parameters()["duration_ms"])
		q.AssertExpectations(t)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		q := new(MockCommandQueries)
		q.On("ClaimPendingCommands", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		cmds, err := NewCommandRepository(q, nil).Claim(ctx, "bag-1", repoNow)
		require.NoError(t, err)
		assert.Empty(t, cmds)
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockCommandQueries)
		q.On("ClaimPendingCommands", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := NewCommandRepository(q, nil).Claim(ctx, "bag-1", repoNow)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCommandRepository_Insert(t *testing.T) {
	ctx := context.Background()
	factory := command.NewFactory(clock.NewMockClock(repoNow), time.Minute)
	cmd, err := factory.NewPending(command.Draft{DeviceID: "bag-1", Action: "relay2_on", Priority: "high"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		q := new(MockCommandQueries)
		q.On("InsertCommand", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertCommandParams) bool {
			return arg.ID == cmd.ID() &&
				arg.Priority == "high" &&
				string(arg.Parameters) == "{}" &&
				arg.ExpiresAt.Time.Equal(repoNow.Add(time.Minute))
		})).Return(int64(42), nil)

		seq, err := NewCommandRepository(q, nil).Insert(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(42), seq)
		q.AssertExpectations(t)
	})

	t.Run("unknown device maps to foreign key kind", func(t *testing.T) {
		q := new(MockCommandQueries)
		q.On("InsertCommand", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), &pgconn.PgError{Code: "23503"})

		_, err := NewCommandRepository(q, nil).Insert(ctx, cmd)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestCommandRepository_ExpireOverdue(t *testing.T) {
	q := new(MockCommandQueries)
	q.On("ExpirePendingCommands", mock.Anything, mock.Anything, pgconv.TimeToPgtype(repoNow)).Return(int64(3), nil)

	n, err := NewCommandRepository(q, nil).ExpireOverdue(context.Background(), repoNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
