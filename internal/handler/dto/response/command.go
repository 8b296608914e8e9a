package response

import (
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type EnqueueCommandResponse struct {
	Success   bool      `json:"success"`
	CommandID string    `json:"command_id"`
	Seq       int64     `json:"seq"`
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	Priority  string    `json:"priority"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
}

func FromEnqueueResult(r *commands.EnqueueResult) *EnqueueCommandResponse {
	return &EnqueueCommandResponse{
		Success:   true,
		CommandID: r.CommandID.String(),
		Seq:       r.Seq,
		DeviceID:  r.DeviceID,
		Action:    r.Action,
		Priority:  r.Priority.String(),
		ExpiresAt: r.ExpiresAt,
		Message:   "Command queued successfully",
	}
}

// DeviceCommand is what a device executes, in list order.
type DeviceCommand struct {
	CommandID  string         `json:"command_id"`
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters"`
	Priority   string         `json:"priority"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
}

type PollCommandsResponse struct {
	Success   bool            `json:"success"`
	DeviceID  string          `json:"device_id"`
	Commands  []DeviceCommand `json:"commands"`
	Timestamp time.Time       `json:"timestamp"`
}

func FromClaimed(deviceID string, cmds []*command.Command, now time.Time) *PollCommandsResponse {
	out := make([]DeviceCommand, len(cmds))
	for i, c := range cmds {
		out[i] = DeviceCommand{
			CommandID:  c.ID().String(),
			Action:     c.Action(),
			Parameters: c.Parameters(),
			Priority:   c.Priority().String(),
			CreatedAt:  c.CreatedAt(),
			ExpiresAt:  c.ExpiresAt(),
		}
	}
	return &PollCommandsResponse{
		Success:   true,
		DeviceID:  deviceID,
		Commands:  out,
		Timestamp: now,
	}
}

type CommandHistoryItem struct {
	ID         string         `json:"id" copier:"-"`
	Seq        int64          `json:"seq"`
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters"`
	Priority   string         `json:"priority"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
	SentAt     *time.Time     `json:"sent_at,omitempty"`
}

func FromCommandHistory(views []*queries.CommandView) ([]CommandHistoryItem, error) {
	out := make([]CommandHistoryItem, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	for i, v := range views {
		out[i].ID = v.ID.String()
	}
	return out, nil
}
