//go:build unit || e2e

package builder

import (
	"time"

	"hydro-command/internal/domain/command"
	reqdto "hydro-command/internal/handler/dto/request"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommandBuilder struct {
	ID         uuid.UUID
	Seq        int64
	DeviceID   string
	Action     string
	Parameters map[string]any
	Priority   command.Priority
	Status     command.Status
	CreatedAt  time.Time
	TTL        time.Duration
	SentAt     *time.Time
}

func NewCommandBuilder() *CommandBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &CommandBuilder{
		ID:         uuid.New(),
		Seq:        1,
		DeviceID:   "grow-bag-1",
		Action:     command.ActionNutrientPumpOn,
		Parameters: map[string]any{"duration": float64(30)},
		Priority:   command.PriorityNormal,
		Status:     command.StatusPending,
		CreatedAt:  now,
		TTL:        command.DefaultTTL,
	}
}

func (b *CommandBuilder) With(mutate func(*CommandBuilder)) *CommandBuilder {
	mutate(b)
	return b
}

func (b *CommandBuilder) BuildDomain() (*command.Command, error) {
	return command.Reconstruct(b.ID, b.Seq, b.DeviceID, b.Action, b.Parameters, b.Priority, b.Status,
		b.CreatedAt, b.CreatedAt.Add(b.TTL), b.SentAt)
}

func (b *CommandBuilder) MustBuildDomain() *command.Command {
	cmd, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return cmd
}

func (b *CommandBuilder) BuildEnqueueDTO() reqdto.EnqueueCommandRequest {
	return reqdto.EnqueueCommandRequest{
		Action:     b.Action,
		Parameters: b.Parameters,
		Priority:   b.Priority.String(),
	}
}

func (b *CommandBuilder) BuildEnqueueResult() *commands.EnqueueResult {
	return &commands.EnqueueResult{
		CommandID: b.ID,
		Seq:       b.Seq,
		DeviceID:  b.DeviceID,
		Action:    b.Action,
		Priority:  b.Priority,
		CreatedAt: b.CreatedAt,
		ExpiresAt: b.CreatedAt.Add(b.TTL),
	}
}

func (b *CommandBuilder) BuildView() *queries.CommandView {
	return &queries.CommandView{
		ID:         b.ID,
		Seq:        b.Seq,
		DeviceID:   b.DeviceID,
		Action:     b.Action,
		Parameters: b.Parameters,
		Priority:   b.Priority.String(),
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
		ExpiresAt:  b.CreatedAt.Add(b.TTL),
		SentAt:     b.SentAt,
	}
}
