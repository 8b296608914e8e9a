package alert

import (
	"errors"

	"hydro-command/internal/domain/threshold"
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidPolicy   = errors.New("invalid cooldown policy")
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityAlert   Severity = "alert"
	SeverityError   Severity = "error"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityAlert, SeverityError:
		return true
	default:
		return false
	}
}

// Persisted reports whether records of this severity are stored and notified.
func (s Severity) Persisted() bool {
	return s == SeverityAlert || s == SeverityError
}

// CooldownPolicy selects which conditions are suppressed by the cooldown table.
type CooldownPolicy string

const (
	// PolicyBinaryOnly applies the cooldown to binary conditions only; every
	// numeric breach produces a record.
	PolicyBinaryOnly CooldownPolicy = "binary_only"
	// PolicyUniform applies the cooldown to numeric breaches as well.
	PolicyUniform CooldownPolicy = "uniform"
)

func NewCooldownPolicy(s string) (CooldownPolicy, error) {
	switch p := CooldownPolicy(s); p {
	case PolicyBinaryOnly, PolicyUniform:
		return p, nil
	case "":
		return PolicyBinaryOnly, nil
	}
	return "", ErrInvalidPolicy
}

// Condition names a binary precondition evaluated independently of the
// numeric ranges.
type Condition string

const ConditionWaterLevel Condition = "water_level"

type Classification string

const (
	Good    Classification = "good"
	Warning Classification = "warning"
	Alert   Classification = "alert"
)

const (
	// WarningBand is the distance outside the range still classified as warning.
	WarningBand = 2.0
	// AlertBand is the distance outside the range past which a record is emitted.
	AlertBand = 4.0
)

// Classify is the presentation status of a reading: good inside the range,
// warning up to WarningBand outside it, alert beyond.
func Classify(v float64, r threshold.Range) Classification {
	switch {
	case r.Contains(v):
		return Good
	case v >= r.Min-WarningBand && v <= r.Max+WarningBand:
		return Warning
	default:
		return Alert
	}
}

// Breaches reports whether v lies beyond the alert band of r.
func Breaches(v float64, r threshold.Range) bool {
	return v < r.Min-AlertBand || v > r.Max+AlertBand
}
