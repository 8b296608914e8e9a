package alert

import (
	"time"

	"github.com/google/uuid"
)

// Record is an emitted alert. Records are never mutated after creation.
type Record struct {
	id        uuid.UUID
	deviceID  string
	parameter string
	message   string
	severity  Severity
	timestamp time.Time
}

func newRecord(deviceID, parameter, message string, severity Severity, ts time.Time) *Record {
	return &Record{
		id:        uuid.New(),
		deviceID:  deviceID,
		parameter: parameter,
		message:   message,
		severity:  severity,
		timestamp: ts,
	}
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) DeviceID() string     { return r.deviceID }
func (r *Record) Parameter() string    { return r.parameter }
func (r *Record) Message() string      { return r.message }
func (r *Record) Severity() Severity   { return r.severity }
func (r *Record) Timestamp() time.Time { return r.timestamp }

func Reconstruct(id uuid.UUID, deviceID, parameter, message string, severity Severity, ts time.Time) (*Record, error) {
	if !severity.IsValid() {
		return nil, ErrInvalidSeverity
	}
	return &Record{
		id:        id,
		deviceID:  deviceID,
		parameter: parameter,
		message:   message,
		severity:  severity,
		timestamp: ts,
	}, nil
}
