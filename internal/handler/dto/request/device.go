package request

import (
	"time"

	"hydro-command/internal/usecase/commands"
)

type RegisterDeviceRequest struct {
	ID       string  `json:"device_id" binding:"required,max=64"`
	Name     string  `json:"name" binding:"max=128"`
	Location *string `json:"location" binding:"omitempty,max=256"`
}

func (r *RegisterDeviceRequest) ToCommand() commands.RegisterDeviceRequest {
	return commands.RegisterDeviceRequest{ID: r.ID, Name: r.Name, Location: r.Location}
}

type IssueAPIKeyRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}
