package response

import (
	"time"

	"hydro-command/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type DeviceResponse struct {
	ID         string     `json:"device_id"`
	Name       string     `json:"name"`
	Location   *string    `json:"location,omitempty"`
	IsActive   bool       `json:"is_active"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FromDevice accepts a device snapshot or list view.
func FromDevice(src any) (*DeviceResponse, error) {
	resp := &DeviceResponse{}
	if err := copier.Copy(resp, src); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromDevices(src any) ([]DeviceResponse, error) {
	var out []DeviceResponse
	if err := copier.Copy(&out, src); err != nil {
		return nil, err
	}
	if out == nil {
		out = []DeviceResponse{}
	}
	return out, nil
}

type APIKeyResponse struct {
	KeyID     string     `json:"key_id"`
	DeviceID  string     `json:"device_id"`
	APIKey    string     `json:"api_key"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Message   string     `json:"message"`
}

func FromIssuedKey(k *commands.IssuedAPIKey) *APIKeyResponse {
	return &APIKeyResponse{
		KeyID:     k.KeyID.String(),
		DeviceID:  k.DeviceID,
		APIKey:    k.Key,
		Prefix:    k.Prefix,
		ExpiresAt: k.ExpiresAt,
		Message:   "Store this key now; it cannot be shown again",
	}
}

