package request

import (
	"time"

	"hydro-command/internal/usecase/commands"
)

type EnqueueCommandRequest struct {
	Action     string         `json:"action" binding:"required,max=64"`
	Parameters map[string]any `json:"parameters"`
	Priority   string         `json:"priority" binding:"omitempty,oneof=normal high"`
	TTLSeconds *int           `json:"ttl_seconds" binding:"omitempty,min=1,max=86400"`
	// ExpiresAt is honoured when TTLSeconds is absent.
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r *EnqueueCommandRequest) ToCommand(deviceID string, now time.Time) commands.EnqueueRequest {
	req := commands.EnqueueRequest{
		DeviceID:   deviceID,
		Action:     r.Action,
		Parameters: r.Parameters,
		Priority:   r.Priority,
	}
	switch {
	case r.TTLSeconds != nil:
		ttl := time.Duration(*r.TTLSeconds) * time.Second
		req.TTL = &ttl
	case r.ExpiresAt != nil:
		ttl := r.ExpiresAt.Sub(now)
		req.TTL = &ttl
	}
	return req
}
