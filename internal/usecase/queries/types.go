package queries

import (
	"time"

	"github.com/google/uuid"
)

// CommandView is a queued command as shown in the audit history.
type CommandView struct {
	ID         uuid.UUID      `json:"id"`
	Seq        int64          `json:"seq"`
	DeviceID   string         `json:"device_id"`
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters"`
	Priority   string         `json:"priority"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
	SentAt     *time.Time     `json:"sent_at,omitempty"`
}

// AlertView is a persisted alert or error record.
type AlertView struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Parameter string    `json:"parameter"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadingView is the latest stored sample of a device. Statuses is filled by
// TelemetryQueries from the device's thresholds.
type ReadingView struct {
	ID         int64              `json:"id"`
	DeviceID   string             `json:"device_id"`
	Timestamp  time.Time          `json:"timestamp"`
	Readings   map[string]float64 `json:"readings"`
	WaterLevel string             `json:"water_level_status"`
	Statuses   map[string]string  `json:"statuses,omitempty"`
}

// ExportBucket is one aggregation interval of sensor readings.
type ExportBucket struct {
	Bucket       time.Time `json:"time"`
	Temperature  float64   `json:"temperature"`
	PH           float64   `json:"ph"`
	EC           float64   `json:"ec"`
	Moisture     float64   `json:"moisture"`
	Humidity     float64   `json:"humidity"`
	ReadingCount int64     `json:"reading_count"`
}

type ExportReport struct {
	DeviceID        string         `json:"device_id"`
	Hours           int            `json:"hours"`
	IntervalMinutes int            `json:"interval"`
	From            time.Time      `json:"from"`
	To              time.Time      `json:"to"`
	Buckets         []ExportBucket `json:"data"`
	Alerts          []AlertView    `json:"alerts"`
}

type ThresholdView struct {
	DeviceID   string                    `json:"device_id"`
	CropID     *string                   `json:"crop_id,omitempty"`
	Parameters map[string]ThresholdRange `json:"parameters"`
	IsDefault  bool                      `json:"is_default"`
	UpdatedAt  *time.Time                `json:"updated_at,omitempty"`
}

type ThresholdRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}
