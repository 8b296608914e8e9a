package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/pkg/errs"
)

var (
	ErrEmptyDeviceID   = errs.Mark(errors.New("device_id is required"), errs.ErrDomainValidation)
	ErrMissingReading  = errs.Mark(errors.New("missing required reading"), errs.ErrDomainValidation)
	ErrOutOfRange      = errs.Mark(errors.New("reading out of accepted range"), errs.ErrDomainValidation)
	ErrInvalidWaterLvl = errs.Mark(errors.New("invalid water_level_status"), errs.ErrDomainValidation)
)

type WaterLevel string

const (
	WaterLevelAdequate WaterLevel = "Adequate"
	WaterLevelLow      WaterLevel = "Below Required Level"
)

func NewWaterLevel(s string) (WaterLevel, error) {
	switch WaterLevel(strings.TrimSpace(s)) {
	case "":
		return WaterLevelAdequate, nil
	case WaterLevelAdequate:
		return WaterLevelAdequate, nil
	case WaterLevelLow:
		return WaterLevelLow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWaterLvl, s)
}

func (w WaterLevel) IsLow() bool {
	return w == WaterLevelLow
}

// Required readings every ingested sample must carry.
var Required = []threshold.Parameter{
	threshold.Temperature, threshold.PH, threshold.EC, threshold.SubstrateMoisture, threshold.Humidity,
}

// physical limits a sensor can report; anything outside is a broken sensor.
var acceptedRanges = map[threshold.Parameter]threshold.Range{
	threshold.Temperature:       {Min: -10, Max: 60},
	threshold.PH:                {Min: 0, Max: 14},
	threshold.EC:                {Min: 0, Max: 10},
	threshold.SubstrateMoisture: {Min: 0, Max: 100},
	threshold.Humidity:          {Min: 0, Max: 100},
}

type Sample struct {
	ID         int64
	DeviceID   string
	Timestamp  time.Time
	Readings   map[threshold.Parameter]float64
	WaterLevel WaterLevel
}

// NewSample validates raw readings and returns a sample stamped with ts.
func NewSample(deviceID string, ts time.Time, readings map[threshold.Parameter]float64, waterLevel string) (Sample, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return Sample{}, ErrEmptyDeviceID
	}
	for _, p := range Required {
		if _, ok := readings[p]; !ok {
			return Sample{}, fmt.Errorf("%w: %s", ErrMissingReading, p)
		}
	}
	for p, v := range readings {
		if !p.IsValid() {
			return Sample{}, fmt.Errorf("%w: %s", threshold.ErrUnknownParameter, p)
		}
		if r, ok := acceptedRanges[p]; ok && !r.Contains(v) {
			return Sample{}, fmt.Errorf("%w: %s=%v (accepted %v..%v)", ErrOutOfRange, p, v, r.Min, r.Max)
		}
	}
	wl, err := NewWaterLevel(waterLevel)
	if err != nil {
		return Sample{}, err
	}

	copied := make(map[threshold.Parameter]float64, len(readings))
	for p, v := range readings {
		copied[p] = v
	}
	return Sample{DeviceID: deviceID, Timestamp: ts, Readings: copied, WaterLevel: wl}, nil
}

func (s Sample) Reading(p threshold.Parameter) (float64, bool) {
	v, ok := s.Readings[p]
	return v, ok
}
