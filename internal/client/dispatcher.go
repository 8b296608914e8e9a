package client

import (
	"context"

	"hydro-command/internal/domain/command"
	reqdto "hydro-command/internal/handler/dto/request"
)

// CommandDispatcher queues commands for one device through the API.
type CommandDispatcher struct {
	client   *Client
	deviceID string
}

func NewCommandDispatcher(c *Client, deviceID string) *CommandDispatcher {
	return &CommandDispatcher{client: c, deviceID: deviceID}
}

func (d *CommandDispatcher) Dispatch(ctx context.Context, action string, params map[string]any, priority command.Priority) error {
	_, err := d.client.EnqueueCommand(ctx, d.deviceID, reqdto.EnqueueCommandRequest{
		Action:     action,
		Parameters: params,
		Priority:   priority.String(),
	})
	return err
}
