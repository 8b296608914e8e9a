package reconciler

import (
	"context"
	"fmt"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/pkg/errs"
)

const (
	// DefaultPickupDelay matches the firmware poll interval.
	DefaultPickupDelay = 5 * time.Second
	DefaultTick        = time.Second
)

type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseAwaitingPickup Phase = "awaiting_pickup"
	PhaseRunning        Phase = "running"
	PhaseStopped        Phase = "stopped"
)

// Pump is one actuator the operator can drive for a duration.
type Pump struct {
	ID        string
	OnAction  string
	OffAction string
}

var DefaultPumps = []Pump{
	{ID: "nutrient_pump", OnAction: command.ActionNutrientPumpOn, OffAction: command.ActionNutrientPumpOff},
	{ID: "relay2", OnAction: command.ActionRelay2On, OffAction: command.ActionRelay2Off},
}

// State is the advisory view of a pump. It is derived from elapsed time only.
type State struct {
	PumpID    string
	Phase     Phase
	Duration  time.Duration
	Remaining time.Duration
	IssuedAt  time.Time
}

// Dispatcher queues a command for the device. Returning nil means the
// command was stored, not that it ran.
type Dispatcher interface {
	Dispatch(ctx context.Context, action string, params map[string]any, priority command.Priority) error
}

type Reason string

const (
	ReasonPermission   Reason = "permission"
	ReasonConnectivity Reason = "connectivity"
	ReasonServer       Reason = "server"
)

// reasoned is implemented by dispatcher errors that know why they failed.
type reasoned interface {
	FailureReason() string
}

var (
	ErrUnknownPump          = errs.New("unknown pump")
	ErrBusy                 = errs.New("pump already has a command in flight")
	ErrInvalidDuration      = errs.New("duration must be at least one second")
	ErrClosed               = errs.New("reconciler closed")
	ErrConfirmationRequired = errs.New("confirmation required")
)

// ConfirmationRequiredError asks the operator to confirm stopping a pump that
// is still counting down.
type ConfirmationRequiredError struct {
	PumpID    string
	Remaining time.Duration
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s still has %s remaining; confirm to stop", e.PumpID, e.Remaining.Round(time.Second))
}

func (e *ConfirmationRequiredError) Is(target error) bool {
	return target == ErrConfirmationRequired
}

// DispatchError reports a failed enqueue with a classified reason.
type DispatchError struct {
	PumpID string
	Action string
	Reason Reason
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s failed (%s): %v", e.PumpID, e.Action, e.Reason, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func classify(err error) Reason {
	var r reasoned
	if errs.As(err, &r) {
		switch Reason(r.FailureReason()) {
		case ReasonPermission:
			return ReasonPermission
		case ReasonConnectivity:
			return ReasonConnectivity
		}
	}
	if errs.Is(err, context.DeadlineExceeded) {
		return ReasonConnectivity
	}
	return ReasonServer
}
