package command

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for delivery; higher is claimed first.
func (p Priority) Rank() int {
	if p == PriorityHigh {
		return 1
	}
	return 0
}

func NewPriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusExpired:
		return true
	default:
		return false
	}
}

// Actions understood by the grow-bag controller firmware.
const (
	ActionNutrientPumpOn    = "nutrient_pump_on"
	ActionNutrientPumpOff   = "nutrient_pump_off"
	ActionRelay2On          = "relay2_on"
	ActionRelay2Off         = "relay2_off"
	ActionManualDosingCycle = "manual_dosing_cycle"
	ActionEmergencyStop     = "emergency_stop"
	ActionRestart           = "restart"
	ActionUpdateSettings    = "update_settings"
)
