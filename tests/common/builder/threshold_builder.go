//go:build unit || e2e

package builder

import (
	reqdto "hydro-command/internal/handler/dto/request"
)

type ThresholdBuilder struct {
	DeviceID   *string
	CropID     *string
	Parameters map[string]reqdto.ThresholdRange
}

func NewThresholdBuilder() *ThresholdBuilder {
	return &ThresholdBuilder{
		Parameters: map[string]reqdto.ThresholdRange{
			"pH": {Min: 5.8, Max: 6.2},
			"ec": {Min: 1.5, Max: 2.0},
		},
	}
}

func (b *ThresholdBuilder) ForDevice(id string) *ThresholdBuilder {
	b.DeviceID = &id
	return b
}

func (b *ThresholdBuilder) BuildSaveDTO() reqdto.SaveThresholdsRequest {
	return reqdto.SaveThresholdsRequest{
		DeviceID:   b.DeviceID,
		CropID:     b.CropID,
		Parameters: b.Parameters,
	}
}
