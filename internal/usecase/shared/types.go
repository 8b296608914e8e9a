package shared

import (
	"time"

	"github.com/google/uuid"
)

type DeviceSnapshot struct {
	ID         string
	Name       string
	Location   *string
	IsActive   bool
	LastSeenAt *time.Time
	CreatedAt  time.Time
}

type APIKeyRecord struct {
	ID         uuid.UUID
	DeviceID   string
	Prefix     string
	Hash       string
	IsActive   bool
	ExpiresAt  *time.Time
	LastUsedAt *time.Time
}

// Usable reports whether the key may authenticate at now.
func (k *APIKeyRecord) Usable(now time.Time) bool {
	if !k.IsActive {
		return false
	}
	return k.ExpiresAt == nil || k.ExpiresAt.After(now)
}
