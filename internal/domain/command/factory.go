package command

import (
	"strings"
	"time"

	"hydro-command/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultTTL = 5 * time.Minute

type Factory struct {
	Clock      clock.Clock
	DefaultTTL time.Duration
}

func NewFactory(clk clock.Clock, defaultTTL time.Duration) *Factory {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Factory{Clock: clk, DefaultTTL: defaultTTL}
}

type Draft struct {
	DeviceID   string
	Action     string
	Parameters map[string]any
	Priority   string
	// nil means the factory default
	TTL *time.Duration
}

// NewPending builds a pending command expiring at now+ttl. emergency_stop is
// always high priority.
func (f *Factory) NewPending(d Draft) (*Command, error) {
	deviceID := strings.TrimSpace(d.DeviceID)
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	action := normalizeAction(d.Action)
	if action == "" {
		return nil, ErrEmptyAction
	}

	ttl := f.DefaultTTL
	if d.TTL != nil {
		ttl = *d.TTL
	}
	if ttl <= 0 {
		return nil, ErrNonPositiveTTL
	}

	priority, err := NewPriority(d.Priority)
	if err != nil {
		return nil, err
	}
	if action == ActionEmergencyStop {
		priority = PriorityHigh
	}

	params := d.Parameters
	if params == nil {
		params = map[string]any{}
	}

	now := f.Clock.Now()
	return &Command{
		id:         uuid.New(),
		deviceID:   deviceID,
		action:     action,
		parameters: params,
		priority:   priority,
		status:     StatusPending,
		createdAt:  now,
		expiresAt:  now.Add(ttl),
	}, nil
}
