package threshold

import (
	"fmt"
	"maps"
	"time"
)

// Set holds the configured ranges of one device, or of the whole fleet when
// DeviceID is AllDevices.
type Set struct {
	deviceID  string
	cropID    *string
	ranges    map[Parameter]Range
	updatedAt time.Time
}

func NewSet(deviceID string, cropID *string, ranges map[Parameter]Range, updatedAt time.Time) (*Set, error) {
	if len(ranges) == 0 {
		return nil, ErrEmptyParameters
	}
	if deviceID == "" {
		deviceID = AllDevices
	}
	for p, r := range ranges {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, p)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return &Set{
		deviceID:  deviceID,
		cropID:    cropID,
		ranges:    maps.Clone(ranges),
		updatedAt: updatedAt,
	}, nil
}

func (s *Set) DeviceID() string     { return s.deviceID }
func (s *Set) CropID() *string      { return s.cropID }
func (s *Set) UpdatedAt() time.Time { return s.updatedAt }
func (s *Set) IsFleetDefault() bool { return s.deviceID == AllDevices }

func (s *Set) Range(p Parameter) (Range, bool) {
	r, ok := s.ranges[p]
	return r, ok
}

// Ranges returns a copy of the configured ranges.
func (s *Set) Ranges() map[Parameter]Range {
	return maps.Clone(s.ranges)
}

// WithDefaults fills parameters missing from s with the fallback ranges.
func (s *Set) WithDefaults(fallback *Set) *Set {
	merged := maps.Clone(s.ranges)
	if fallback != nil {
		for p, r := range fallback.ranges {
			if _, ok := merged[p]; !ok {
				merged[p] = r
			}
		}
	}
	return &Set{deviceID: s.deviceID, cropID: s.cropID, ranges: merged, updatedAt: s.updatedAt}
}

// ForDevice returns a copy keyed to deviceID, used when a fleet set is served
// on behalf of a specific device.
func (s *Set) ForDevice(deviceID string) *Set {
	return &Set{deviceID: deviceID, cropID: s.cropID, ranges: maps.Clone(s.ranges), updatedAt: s.updatedAt}
}
