package request

import (
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/pkg/patch"
	"hydro-command/internal/usecase/commands"
)

type ThresholdRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SaveThresholdsRequest uses the dashboard's camelCase keys. A missing
// deviceId saves the fleet default.
type SaveThresholdsRequest struct {
	DeviceID   *string                   `json:"deviceId"`
	CropID     *string                   `json:"cropId"`
	Parameters map[string]ThresholdRange `json:"parameters" binding:"required,min=1"`
}

func (r *SaveThresholdsRequest) ToCommand() commands.SaveThresholdsRequest {
	params := make(map[string]threshold.Range, len(r.Parameters))
	for name, rg := range r.Parameters {
		params[name] = threshold.Range{Min: rg.Min, Max: rg.Max}
	}
	return commands.SaveThresholdsRequest{
		DeviceID:   patch.Coalesce(r.DeviceID, ""),
		CropID:     r.CropID,
		Parameters: params,
	}
}
