package response

import (
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ThresholdRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}

type ThresholdsResponse struct {
	Success    bool                      `json:"success"`
	DeviceID   string                    `json:"deviceId"`
	CropID     *string                   `json:"cropId,omitempty"`
	Parameters map[string]ThresholdRange `json:"parameters" copier:"-"`
	IsDefault  bool                      `json:"isDefault"`
	UpdatedAt  *time.Time                `json:"updatedAt,omitempty"`
}

func FromThresholdView(v *queries.ThresholdView) (*ThresholdsResponse, error) {
	resp := &ThresholdsResponse{}
	if err := copier.CopyWithOption(resp, v, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	resp.Success = true
	resp.Parameters = make(map[string]ThresholdRange, len(v.Parameters))
	for name, r := range v.Parameters {
		resp.Parameters[name] = ThresholdRange{Min: r.Min, Max: r.Max, Unit: r.Unit}
	}
	return resp, nil
}

type SaveThresholdsResponse struct {
	Success   bool      `json:"success"`
	DeviceID  string    `json:"deviceId"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message"`
}

func FromSavedSet(s *threshold.Set) *SaveThresholdsResponse {
	return &SaveThresholdsResponse{
		Success:   true,
		DeviceID:  s.DeviceID(),
		UpdatedAt: s.UpdatedAt(),
		Message:   "Parameters saved successfully",
	}
}
