package command

import (
	"errors"
	"strings"
	"time"

	"hydro-command/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyDeviceID    = errs.Mark(errors.New("device_id is required"), errs.ErrDomainValidation)
	ErrEmptyAction      = errs.Mark(errors.New("action is required"), errs.ErrDomainValidation)
	ErrNonPositiveTTL   = errs.Mark(errors.New("ttl must be positive"), errs.ErrDomainValidation)
	ErrInvalidPriority  = errs.Mark(errors.New("priority must be normal or high"), errs.ErrDomainValidation)
	ErrInvalidStatus    = errors.New("invalid command status")
	ErrInvalidLifecycle = errors.New("expires_at must be after created_at")
)

type Command struct {
	id         uuid.UUID
	seq        int64
	deviceID   string
	action     string
	parameters map[string]any
	priority   Priority
	status     Status
	createdAt  time.Time
	expiresAt  time.Time
	sentAt     *time.Time
}

func (c *Command) ID() uuid.UUID              { return c.id }
func (c *Command) Seq() int64                 { return c.seq }
func (c *Command) DeviceID() string           { return c.deviceID }
func (c *Command) Action() string             { return c.action }
func (c *Command) Parameters() map[string]any { return c.parameters }
func (c *Command) Priority() Priority         { return c.priority }
func (c *Command) Status() Status             { return c.status }
func (c *Command) CreatedAt() time.Time       { return c.createdAt }
func (c *Command) ExpiresAt() time.Time       { return c.expiresAt }
func (c *Command) SentAt() *time.Time         { return c.sentAt }

// IsClaimableAt reports whether a poll at now may deliver the command.
func (c *Command) IsClaimableAt(now time.Time) bool {
	return c.status == StatusPending && c.expiresAt.After(now)
}

// Reconstruct rebuilds a persisted command. seq is the store's insertion order.
func Reconstruct(
	id uuid.UUID,
	seq int64,
	deviceID string,
	action string,
	parameters map[string]any,
	priority Priority,
	status Status,
	createdAt time.Time,
	expiresAt time.Time,
	sentAt *time.Time,
) (*Command, error) {
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !expiresAt.After(createdAt) {
		return nil, ErrInvalidLifecycle
	}
	if parameters == nil {
		parameters = map[string]any{}
	}
	return &Command{
		id:         id,
		seq:        seq,
		deviceID:   deviceID,
		action:     action,
		parameters: parameters,
		priority:   priority,
		status:     status,
		createdAt:  createdAt,
		expiresAt:  expiresAt,
		sentAt:     sentAt,
	}, nil
}

func normalizeAction(a string) string {
	return strings.TrimSpace(a)
}
